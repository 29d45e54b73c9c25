package document

// documentDTO mirrors the YAML shape of a graph document. The graph
// section stays loosely typed here; tagging the target variants happens
// during conversion into the domain model.
type documentDTO struct {
	Header   map[string]any            `yaml:"header"`
	Classmap map[string]string         `yaml:"classmap"`
	Vertices map[string]map[string]any `yaml:"vertices"`
	Edges    map[string]map[string]any `yaml:"edges"`
	Graph    map[string]map[string]any `yaml:"graph"`
}
