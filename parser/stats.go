package parser

// DocumentStats contains statistical information about a document
type DocumentStats struct {
	PathCount      int // Number of paths defined
	OperationCount int // Total number of operations across all paths
	SchemaCount    int // Number of component schemas
}

// GetDocumentStats returns statistics for a parsed document
func GetDocumentStats(doc *Document) DocumentStats {
	stats := DocumentStats{}
	if doc == nil {
		return stats
	}
	stats.PathCount = doc.Paths.Len()
	for _, item := range doc.Paths.All() {
		for range item.Operations() {
			stats.OperationCount++
		}
	}
	if doc.Components != nil {
		stats.SchemaCount = doc.Components.Schemas.Len()
	}
	return stats
}
