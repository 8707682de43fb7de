package models

import "time"

// ItemType tells whether an item was lost or found by its reporter.
type ItemType string

const (
	ItemLost  ItemType = "lost"
	ItemFound ItemType = "found"
)

// ItemStatus is the lifecycle stage of a reported item.
type ItemStatus string

const (
	// ItemReported is the initial status of every new item.
	ItemReported  ItemStatus = "reported"
	ItemClaimed   ItemStatus = "claimed"
	ItemRecovered ItemStatus = "recovered"
)

// Item is a lost or found object reported by a user.
type Item struct {
	ID     string `json:"_id"`
	UserID string `json:"userId"`

	// ItemName is unique across all items.
	ItemName    string     `json:"itemName"`
	Description string     `json:"description"`
	ItemType    ItemType   `json:"itemType"`
	Question    string     `json:"question"`
	ItemStatus  ItemStatus `json:"itemStatus"`

	// Date is the moment the item was reported.
	Date time.Time `json:"date"`

	// Images are the stored filenames of the uploaded pictures, in upload order.
	Images []ItemImage `json:"itemImages"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ItemImage references a stored picture of an item.
type ItemImage struct {
	Img string `json:"img"`
}

// NewItem holds the multipart form fields of POST /addItem.
type NewItem struct {
	ItemName    string   `json:"itemName" validate:"required,max=200"`
	Description string   `json:"description" validate:"required,max=2000"`
	ItemType    ItemType `json:"itemType" validate:"required,oneof=lost found"`
	Question    string   `json:"question" validate:"required,max=500"`
}

// ItemFilter narrows GET /getItems. Empty fields match everything.
type ItemFilter struct {
	Type   ItemType   `json:"type" validate:"omitempty,oneof=lost found"`
	Status ItemStatus `json:"status" validate:"omitempty,oneof=reported claimed recovered"`
}
