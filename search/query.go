// Package search translates CQL queries into the supplier's search
// parameters and supplier result documents into standardized
// bibliographic records.
package search

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/indexdata/cql-go/cql"
)

// QueryError reports search input that cannot be translated.
type QueryError struct {
	Query   string
	Message string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("bad search query %q: %s", e.Query, e.Message)
}

const paramPrefix = "SearchRequest.Advanced."

type priority int

const (
	// titleLevel terms lose their slot to itemOfInterestLevel terms.
	priorityLow priority = iota
	priorityHigh
)

type slotDef struct {
	slot     string
	priority priority
}

// indexSlots maps lowercased CQL index names onto the supplier's search
// parameters. Several indexes share a slot; the component-level variant
// wins when both appear in one query.
var indexSlots = map[string]slotDef{
	"title":             {"title", priorityLow},
	"titleofcomponent":  {"title", priorityHigh},
	"author":            {"author", priorityLow},
	"authorofcomponent": {"author", priorityHigh},
	"isbn":              {"isbn", priorityHigh},
	"issn":              {"issn", priorityHigh},
	"type":              {"type", priorityHigh},
	"publicationtype":   {"type", priorityHigh},
	"general":           {"general", priorityLow},
	"volume":            {"general", priorityLow},
}

// ToSupplierQuery translates a CQL query into the supplier's search
// parameters. Unsupported indexes are skipped; start and maxResults are
// added only when positive.
func ToSupplierQuery(query string, start, maxResults int) (map[string]string, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &QueryError{Query: query, Message: "empty query"}
	}
	var parser cql.Parser
	parsed, err := parser.Parse(query)
	if err != nil {
		return nil, &QueryError{Query: query, Message: err.Error()}
	}

	slots := map[string]slotEntry{}
	collectClauses(parsed.Clause, slots)

	params := map[string]string{
		"SearchRequest.fullDetails": "true",
	}
	for slot, entry := range slots {
		params[paramPrefix+slot] = entry.term
	}
	if start > 0 {
		params["SearchRequest.start"] = strconv.Itoa(start)
	}
	if maxResults > 0 {
		params["SearchRequest.maxResults"] = strconv.Itoa(maxResults)
	}
	return params, nil
}

type slotEntry struct {
	term     string
	priority priority
}

func collectClauses(clause cql.Clause, slots map[string]slotEntry) {
	if sc := clause.SearchClause; sc != nil {
		def, ok := indexSlots[strings.ToLower(sc.Index)]
		if !ok {
			return
		}
		if existing, set := slots[def.slot]; set && existing.priority >= def.priority {
			return
		}
		slots[def.slot] = slotEntry{term: sc.Term, priority: def.priority}
		return
	}
	if bc := clause.BoolClause; bc != nil {
		collectClauses(bc.Left, slots)
		collectClauses(bc.Right, slots)
	}
}
