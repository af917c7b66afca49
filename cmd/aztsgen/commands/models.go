package commands

// Report is the top-level structure of the describe YAML.
type Report struct {
	Index IndexReport `yaml:"index"`
}

// IndexReport summarises how an index definition maps to TypeScript.
type IndexReport struct {
	Name      string        `yaml:"name"`
	Interface string        `yaml:"interface"`
	Fallbacks int           `yaml:"fallbacks"`
	Fields    []FieldReport `yaml:"fields"`
}

// FieldReport holds the source and target type of a single field. Fallback
// is set when the source tag is not in the type table and maps to "any".
type FieldReport struct {
	Name       string `yaml:"name"`
	SourceType string `yaml:"source"`
	TargetType string `yaml:"target"`
	Fallback   bool   `yaml:"fallback,omitempty"`
}
