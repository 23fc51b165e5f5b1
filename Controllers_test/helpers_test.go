package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"testing"

	"gorm.io/datatypes"
)

func bytesReader(b []byte) io.Reader {
	return bytes.NewReader(b)
}

// jsonName builds the i18n name column used by menu entities.
func jsonName(name string) datatypes.JSON {
	return datatypes.JSON([]byte(fmt.Sprintf(`{"en":%q}`, name)))
}

func nameOf(t *testing.T, raw datatypes.JSON) string {
	t.Helper()
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal name: %v", err)
	}
	return m["en"]
}
