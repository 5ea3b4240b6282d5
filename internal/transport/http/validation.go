package http

import "fmt"

// validateOrderRequest checks the decoded order body before it reaches
// the use case. Stock and activation checks stay in the domain; this
// only rejects requests that are malformed on their face.
func validateOrderRequest(req *OrderRequest) error {
	if len(req.Lines) == 0 {
		return fmt.Errorf("at least one line item is required")
	}
	for i, line := range req.Lines {
		if line.Product == "" {
			return fmt.Errorf("line %d: product is required", i)
		}
		if line.Quantity <= 0 {
			return fmt.Errorf("line %d: quantity must be positive", i)
		}
	}
	return nil
}
