package pricing

// Saleable is the catalog entity a price is computed for.
type Saleable interface {
	// ID returns the entity id; "" or "0" mean the entity has none yet.
	ID() string
}

// Product is a minimal Saleable loaded from the store configuration.
type Product struct {
	SKU  string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

func (p Product) ID() string { return p.SKU }

// HasID reports whether id identifies an entity. Empty and "0" ids do not.
func HasID(id string) bool {
	return id != "" && id != "0"
}
