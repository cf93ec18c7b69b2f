package domain

// Inventory is the decoded response of the inventory endpoint. Only the
// item descriptors are kept; asset rows carry nothing the pages render.
type Inventory struct {
	Items      []Item `json:"descriptions"`
	TotalCount int    `json:"total_inventory_count"`
	Success    int    `json:"success"`
}

// Item is a single item descriptor.
type Item struct {
	ClassID        string        `json:"classid"`
	InstanceID     string        `json:"instanceid"`
	Name           string        `json:"name"`
	MarketHashName string        `json:"market_hash_name"`
	Type           string        `json:"type"`
	IconURL        string        `json:"icon_url"`
	NameColor      string        `json:"name_color"`
	Descriptions   []Description `json:"descriptions"`
	Tags           []Tag         `json:"tags"`
}

// Description is one free-text line of an item descriptor.
type Description struct {
	Type  string `json:"type"`
	Value string `json:"value"`
	Color string `json:"color,omitempty"`
}

// Tag is a classification tag of an item descriptor.
type Tag struct {
	Category              string `json:"category"`
	InternalName          string `json:"internal_name"`
	LocalizedCategoryName string `json:"localized_category_name"`
	LocalizedTagName      string `json:"localized_tag_name"`
	Color                 string `json:"color,omitempty"`
}
