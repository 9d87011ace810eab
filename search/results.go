package search

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PTFS-Europe/mod-ill-connector-bldss/codes"
	"github.com/PTFS-Europe/mod-ill-connector-bldss/iso18626"
	"github.com/PTFS-Europe/mod-ill-connector-bldss/xmlutil"
)

// Record is one standardized search result.
type Record struct {
	BibliographicInfo iso18626.BibliographicInfo `json:"BibliographicInfo"`
	PublicationInfo   iso18626.PublicationInfo   `json:"PublicationInfo"`
	Abstract          string                     `json:"Abstract,omitempty"`
	Available         bool                       `json:"Available"`
}

// Results is the standardized view of a supplier search response.
type Results struct {
	NumberOfRecords int      `json:"NumberOfRecords"`
	Records         []Record `json:"Records"`
}

var (
	isbnPattern = regexp.MustCompile(`^(\d{9}[\dX]|\d{13})$`)
	issnPattern = regexp.MustCompile(`^\d{4}\d{3}[\dX]$`)
	ismnPattern = regexp.MustCompile(`^(9790\d+|M\d+)$`)
)

// identifierProbes is the order identifier values are classified in.
var identifierProbes = []struct {
	code    string
	pattern *regexp.Regexp
}{
	{"ISBN", isbnPattern},
	{"ISSN", issnPattern},
	{"ISMN", ismnPattern},
}

// FromSupplierResults translates a supplier search response document.
func FromSupplierResults(doc string) (*Results, error) {
	root, err := xmlutil.ParseString(doc)
	if err != nil {
		return nil, err
	}
	countNode, err := root.One("numberOfRecords")
	if err != nil {
		return nil, err
	}
	count, err := strconv.Atoi(countNode.Text)
	if err != nil {
		return nil, &xmlutil.ShapeError{Path: "numberOfRecords", Message: "not a number: " + countNode.Text}
	}

	results := &Results{NumberOfRecords: count}
	for _, node := range records(root) {
		record, err := buildRecord(node)
		if err != nil {
			return nil, err
		}
		results.Records = append(results.Records, record)
	}
	return results, nil
}

func records(root *xmlutil.Node) []*xmlutil.Node {
	var out []*xmlutil.Node
	var walk func(n *xmlutil.Node)
	walk = func(n *xmlutil.Node) {
		for _, child := range n.Children {
			if child.Name == "record" {
				out = append(out, child)
				continue
			}
			walk(child)
		}
	}
	walk(root)
	return out
}

func buildRecord(node *xmlutil.Node) (Record, error) {
	record := Record{
		Abstract:  node.TextOf("abstractText"),
		Available: node.TextOf("isAvailableImmediateley") == "true",
	}

	bib := &record.BibliographicInfo
	bib.SupplierUniqueRecordId = node.TextOf("uin")

	titleLevel := node.First("titleLevel")
	interestLevel := node.First("itemOfInterestLevel")
	itemLevel := node.First("itemLevel")

	// Component-level title and author describe what the requester
	// actually wants and win over the title-level ones.
	bib.Title = levelText(interestLevel, titleLevel, "title")
	bib.Author = levelText(interestLevel, titleLevel, "author")
	if titleLevel != nil {
		bib.BibliographicItemId = identifiers(titleLevel.TextOf("identifier"))
		record.PublicationInfo.Publisher = titleLevel.TextOf("publisher")
	}
	if itemLevel != nil {
		record.PublicationInfo.PublicationDate = itemLevel.TextOf("year")
		bib.Volume = itemLevel.TextOf("volume")
		bib.Issue = itemLevel.TextOf("part")
	}
	if interestLevel != nil {
		bib.TitleOfComponent = interestLevel.TextOf("title")
		bib.AuthorOfComponent = interestLevel.TextOf("author")
		bib.PagesRequested = interestLevel.TextOf("pages")
	}

	if supplierType := node.TextOf("type"); supplierType != "" {
		isoType, err := codes.PublicationTypeFromSupplier(supplierType)
		if err != nil {
			return record, err
		}
		record.PublicationInfo.PublicationType = isoType
	}
	return record, nil
}

func levelText(preferred, fallback *xmlutil.Node, name string) string {
	if preferred != nil {
		if value := preferred.TextOf(name); value != "" {
			return value
		}
	}
	if fallback != nil {
		return fallback.TextOf(name)
	}
	return ""
}

// identifiers splits a pipe-delimited identifier field and classifies
// each value by probing the known id shapes in order.
func identifiers(field string) []iso18626.BibliographicItemId {
	var out []iso18626.BibliographicItemId
	for _, raw := range strings.Split(field, "|") {
		value := strings.TrimSpace(raw)
		if value == "" {
			continue
		}
		normalized := strings.ToUpper(strings.ReplaceAll(strings.ReplaceAll(value, "-", ""), " ", ""))
		for _, probe := range identifierProbes {
			if probe.pattern.MatchString(normalized) {
				out = append(out, iso18626.BibliographicItemId{
					BibliographicItemIdentifier:     value,
					BibliographicItemIdentifierCode: probe.code,
				})
				break
			}
		}
	}
	return out
}
