package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/onurusluca/qrkosta-app/models"
	"github.com/onurusluca/qrkosta-app/router"
	"github.com/onurusluca/qrkosta-app/utils"
)

// Full customer journey over the real router: QR redirect, menu load,
// table session, order submission, order history.
func TestCustomerJourney(t *testing.T) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(
		&models.Shop{},
		&models.Table{},
		&models.Menu{},
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.MenuItemVariant{},
		&models.TableSession{},
		&models.Order{},
		&models.OrderItem{},
		&models.Visit{},
	))

	shortID := "AB1CD"
	shop := models.Shop{
		Name:     "Sakura Cafe",
		Slug:     "sakura-cafe",
		ShortID:  &shortID,
		IsActive: true,
	}
	assert.NoError(t, db.Create(&shop).Error)

	table := models.Table{
		ShopID:      shop.ID,
		ShortID:     "T1Q2Z",
		TableNumber: "1",
		IsActive:    true,
	}
	assert.NoError(t, db.Create(&table).Error)

	menu := models.Menu{ShopID: shop.ID, Name: "Grand Menu", IsActive: true}
	assert.NoError(t, db.Create(&menu).Error)

	category := models.MenuCategory{
		MenuID:    menu.ID,
		ShopID:    shop.ID,
		Name:      datatypes.JSON(`{"en":"Mains"}`),
		IsVisible: true,
	}
	assert.NoError(t, db.Create(&category).Error)

	item := models.MenuItem{
		CategoryID:  category.ID,
		ShopID:      shop.ID,
		Name:        datatypes.JSON(`{"en":"Katsu Curry"}`),
		Price:       980,
		IsAvailable: true,
	}
	assert.NoError(t, db.Create(&item).Error)

	r := router.SetupRouter(db)

	get := func(url string) (*httptest.ResponseRecorder, map[string]interface{}) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", url, nil)
		r.ServeHTTP(w, req)
		var body map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &body)
		return w, body
	}

	// Scanning the shop QR resolves the short id to a slug.
	w, body := get("/api/shop/AB1CD")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sakura-cafe", body["slug"])

	// Following the slug loads the shop with its default menu.
	w, body = get("/api/shop/sakura-cafe")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, body["menu"])
	assert.Len(t, body["categories"], 1)
	assert.Len(t, body["items"], 1)

	// Scanning the table QR opens a session.
	w, body = get("/api/shop/sakura-cafe/table/T1Q2Z")
	assert.Equal(t, http.StatusOK, w.Code)
	sessionID, _ := body["session_id"].(string)
	assert.NotEmpty(t, sessionID)

	// The same table scan reuses the session.
	w, body = get("/api/shop/sakura-cafe/table/T1Q2Z")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, sessionID, body["session_id"])

	// Submit an order for the table.
	payload, _ := json.Marshal(map[string]interface{}{
		"items": []map[string]interface{}{
			{"menu_item_id": item.ID, "quantity": 2},
		},
	})
	w = httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/shop/sakura-cafe/table/T1Q2Z/order", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var created map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created["order_id"])
	assert.Equal(t, models.OrderStatusPending, created["status"])

	// The order shows up in the table's history with its items.
	w, body = get("/api/shop/sakura-cafe/table/T1Q2Z/orders")
	assert.Equal(t, http.StatusOK, w.Code)
	orders, _ := body["orders"].([]interface{})
	assert.Len(t, orders, 1)
	order, _ := orders[0].(map[string]interface{})
	assert.Equal(t, created["order_id"], order["id"])
	assert.Equal(t, sessionID, order["session_id"])
	orderItems, _ := order["order_items"].([]interface{})
	assert.Len(t, orderItems, 1)
	first, _ := orderItems[0].(map[string]interface{})
	assert.EqualValues(t, 2, first["quantity"])
}
