// internal/models/schema.go
package models

// FieldSpec describes one field of a collection schema: its primitive type,
// whether it must be present on create, the default applied when absent, and
// any numeric constraint.
type FieldSpec struct {
	Type       string      `json:"type"`
	Required   bool        `json:"required"`
	Default    interface{} `json:"default,omitempty"`
	Constraint string      `json:"constraint,omitempty"`
}

// SchemaInfo is one entry of the /schema listing.
type SchemaInfo struct {
	Name   string               `json:"name"`
	Fields map[string]FieldSpec `json:"fields"`
}

// SchemaRegistry returns the field-constraint table for every collection.
// The table is static; it must be kept in sync with the model structs and
// the create-request bindings by hand.
func SchemaRegistry() []SchemaInfo {
	return []SchemaInfo{
		{
			Name: "farmer",
			Fields: map[string]FieldSpec{
				"name":           {Type: "string", Required: true},
				"phone":          {Type: "string", Required: true},
				"region":         {Type: "string", Required: true},
				"farm_name":      {Type: "string"},
				"languages":      {Type: "[]string", Default: []string{"uz"}},
				"certifications": {Type: "[]string", Default: []string{}},
				"bio":            {Type: "string"},
			},
		},
		{
			Name: "buyer",
			Fields: map[string]FieldSpec{
				"name":         {Type: "string", Required: true},
				"type":         {Type: "string", Required: true, Constraint: "consumer|restaurant|retailer|exporter"},
				"organization": {Type: "string"},
				"phone":        {Type: "string", Required: true},
				"region":       {Type: "string"},
			},
		},
		{
			Name: "product",
			Fields: map[string]FieldSpec{
				"farmer_id":          {Type: "string", Required: true},
				"title":              {Type: "string", Required: true},
				"category":           {Type: "string", Required: true},
				"price":              {Type: "float", Required: true, Constraint: ">= 0"},
				"unit":               {Type: "string", Required: true},
				"available_quantity": {Type: "float", Required: true, Constraint: ">= 0"},
				"photos":             {Type: "[]string", Default: []string{}},
				"description":        {Type: "string"},
			},
		},
		{
			Name: "order",
			Fields: map[string]FieldSpec{
				"buyer_id":        {Type: "string", Required: true},
				"items":           {Type: "[]order_item", Required: true},
				"status":          {Type: "string", Default: "pending", Constraint: "pending|confirmed|in_transit|delivered|cancelled"},
				"delivery_method": {Type: "string", Default: "delivery", Constraint: "delivery|pickup"},
				"scheduled_date":  {Type: "string"},
				"route_id":        {Type: "string"},
			},
		},
		{
			Name: "order_item",
			Fields: map[string]FieldSpec{
				"product_id": {Type: "string", Required: true},
				"quantity":   {Type: "float", Required: true, Constraint: "> 0"},
				"price":      {Type: "float", Required: true, Constraint: ">= 0"},
			},
		},
		{
			Name: "route",
			Fields: map[string]FieldSpec{
				"date":         {Type: "string", Required: true},
				"vehicle_type": {Type: "string"},
				"cold_chain":   {Type: "bool", Default: false},
				"stops":        {Type: "[]route_stop", Default: []string{}},
			},
		},
		{
			Name: "route_stop",
			Fields: map[string]FieldSpec{
				"order_id": {Type: "string", Required: true},
				"location": {Type: "string"},
				"eta":      {Type: "string"},
			},
		},
	}
}
