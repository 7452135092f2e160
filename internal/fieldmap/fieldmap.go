// Package fieldmap translates between the application's camelCase field
// naming and the store's snake_case naming. The mapping is a static,
// explicitly declared table rather than runtime string inspection, so a
// schema drift shows up as a missing table entry instead of a silent
// mis-cased key. Keys absent from the table pass through unchanged in
// both directions, recursively through nested objects and arrays.
package fieldmap

// Field declares one app-side/store-side name pair
type Field struct {
	App   string
	Store string
}

// Table holds a bidirectional field-name mapping
type Table struct {
	appToStore map[string]string
	storeToApp map[string]string
}

func NewTable(fields []Field) *Table {
	t := &Table{
		appToStore: make(map[string]string, len(fields)),
		storeToApp: make(map[string]string, len(fields)),
	}
	for _, f := range fields {
		t.appToStore[f.App] = f.Store
		t.storeToApp[f.Store] = f.App
	}
	return t
}

// ToStore rewrites app-convention keys to store convention
func (t *Table) ToStore(v interface{}) interface{} {
	return t.transform(v, t.appToStore)
}

// ToApp rewrites store-convention keys to app convention
func (t *Table) ToApp(v interface{}) interface{} {
	return t.transform(v, t.storeToApp)
}

func (t *Table) transform(v interface{}, names map[string]string) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, inner := range val {
			name, ok := names[k]
			if !ok {
				name = k
			}
			out[name] = t.transform(inner, names)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, inner := range val {
			out[i] = t.transform(inner, names)
		}
		return out
	default:
		return v
	}
}

// ProductTable maps the Product entity between the API payload shape
// and the products table columns.
var ProductTable = NewTable([]Field{
	{App: "id", Store: "id"},
	{App: "title", Store: "title"},
	{App: "price", Store: "price"},
	{App: "description", Store: "description"},
	{App: "rating", Store: "rating"},
	{App: "reviewSummary", Store: "review_summary"},
	{App: "images", Store: "images"},
	{App: "affiliateLink", Store: "affiliate_link"},
	{App: "status", Store: "status"},
	{App: "publishDate", Store: "publish_date"},
	{App: "createdAt", Store: "created_at"},
	{App: "updatedAt", Store: "updated_at"},
})

// LoginLogTable maps the admin login audit entity
var LoginLogTable = NewTable([]Field{
	{App: "id", Store: "id"},
	{App: "email", Store: "email"},
	{App: "ip", Store: "ipaddr"},
	{App: "userAgent", Store: "user_agent"},
	{App: "loginTime", Store: "login_time"},
})
