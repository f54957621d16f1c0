// Package manifest reads the garden's model list from YAML.
//
//	models:
//	  - name: oak
//	    category: tree
//	  - name: rose
//	    category: flower
//
// Categories pick the fallback shape used when a model cannot be fetched.
// Entries without a category fall back to the name-based classification.
package manifest
