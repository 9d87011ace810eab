package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PTFS-Europe/mod-ill-connector-bldss/iso18626"
)

func TestToSupplierQuerySingleIndex(t *testing.T) {
	params, err := ToSupplierQuery(`title="dogs of war"`, 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{
		"SearchRequest.fullDetails":    "true",
		"SearchRequest.Advanced.title": "dogs of war",
	}, params)
}

func TestToSupplierQueryComponentTitleWins(t *testing.T) {
	params, err := ToSupplierQuery(`title="Sleep and dreaming" and titleOfComponent="Why we dream"`, 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, "Why we dream", params["SearchRequest.Advanced.title"])

	// Order of the clauses must not matter.
	params, err = ToSupplierQuery(`titleOfComponent="Why we dream" and title="Sleep and dreaming"`, 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, "Why we dream", params["SearchRequest.Advanced.title"])
}

func TestToSupplierQueryMultipleSlots(t *testing.T) {
	params, err := ToSupplierQuery(`author=Dillon and isbn=9780000000000 or volume=2`, 1, 25)
	assert.NoError(t, err)
	assert.Equal(t, "Dillon", params["SearchRequest.Advanced.author"])
	assert.Equal(t, "9780000000000", params["SearchRequest.Advanced.isbn"])
	assert.Equal(t, "2", params["SearchRequest.Advanced.general"])
	assert.Equal(t, "1", params["SearchRequest.start"])
	assert.Equal(t, "25", params["SearchRequest.maxResults"])
}

func TestToSupplierQueryIgnoresUnknownIndexes(t *testing.T) {
	params, err := ToSupplierQuery(`title=Sleep and holdingsCount=3`, 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, "Sleep", params["SearchRequest.Advanced.title"])
	assert.Len(t, params, 2)
}

func TestToSupplierQueryErrors(t *testing.T) {
	_, err := ToSupplierQuery("  ", 0, 0)
	var queryErr *QueryError
	assert.ErrorAs(t, err, &queryErr)

	_, err = ToSupplierQuery(`(((`, 0, 0)
	assert.ErrorAs(t, err, &queryErr)
}

const searchResponse = `<?xml version="1.0" encoding="UTF-8"?>
<apiResponse>
  <timestamp>2016-07-27 15:17:33.941 GMT</timestamp>
  <status>0</status>
  <message>Search processed successfully.</message>
  <result>
    <numberOfRecords>2</numberOfRecords>
    <records>
      <record>
        <uin>BLL01018986556</uin>
        <type>book</type>
        <isAvailableImmediateley>true</isAvailableImmediateley>
        <abstractText>A study of sleep.</abstractText>
        <metadata>
          <titleLevel>
            <title>Sleep and dreaming</title>
            <author>C. Dillon</author>
            <identifier>9780000000000|1234-5678</identifier>
            <publisher>Example House</publisher>
          </titleLevel>
          <itemLevel>
            <year>2016</year>
            <volume>2</volume>
          </itemLevel>
        </metadata>
      </record>
      <record>
        <uin>BLL01018986557</uin>
        <type>journal</type>
        <isAvailableImmediateley>false</isAvailableImmediateley>
        <metadata>
          <titleLevel>
            <title>Journal of sleep research</title>
          </titleLevel>
          <itemOfInterestLevel>
            <title>Why we dream</title>
            <author>B. Okafor</author>
            <pages>101-119</pages>
          </itemOfInterestLevel>
        </metadata>
      </record>
    </records>
  </result>
</apiResponse>`

func TestFromSupplierResults(t *testing.T) {
	results, err := FromSupplierResults(searchResponse)
	assert.NoError(t, err)
	assert.Equal(t, 2, results.NumberOfRecords)
	assert.Len(t, results.Records, 2)

	first := results.Records[0]
	assert.Equal(t, "BLL01018986556", first.BibliographicInfo.SupplierUniqueRecordId)
	assert.Equal(t, "Sleep and dreaming", first.BibliographicInfo.Title)
	assert.Equal(t, "C. Dillon", first.BibliographicInfo.Author)
	assert.Equal(t, iso18626.TypePublicationTypeBook, first.PublicationInfo.PublicationType)
	assert.Equal(t, "Example House", first.PublicationInfo.Publisher)
	assert.Equal(t, "2016", first.PublicationInfo.PublicationDate)
	assert.Equal(t, "2", first.BibliographicInfo.Volume)
	assert.Equal(t, "A study of sleep.", first.Abstract)
	assert.True(t, first.Available)

	assert.Equal(t, []iso18626.BibliographicItemId{
		{BibliographicItemIdentifier: "9780000000000", BibliographicItemIdentifierCode: "ISBN"},
		{BibliographicItemIdentifier: "1234-5678", BibliographicItemIdentifierCode: "ISSN"},
	}, first.BibliographicInfo.BibliographicItemId)

	second := results.Records[1]
	// Component title and author win over the title-level ones.
	assert.Equal(t, "Why we dream", second.BibliographicInfo.Title)
	assert.Equal(t, "B. Okafor", second.BibliographicInfo.Author)
	assert.Equal(t, "Why we dream", second.BibliographicInfo.TitleOfComponent)
	assert.Equal(t, "101-119", second.BibliographicInfo.PagesRequested)
	assert.Equal(t, iso18626.TypePublicationTypeJournal, second.PublicationInfo.PublicationType)
	assert.False(t, second.Available)
}

func TestFromSupplierResultsRequiresCount(t *testing.T) {
	_, err := FromSupplierResults(`<apiResponse><result><records/></result></apiResponse>`)
	assert.ErrorContains(t, err, `missing element "numberOfRecords"`)
}

func TestFromSupplierResultsUnknownType(t *testing.T) {
	_, err := FromSupplierResults(`<apiResponse><result>
  <numberOfRecords>1</numberOfRecords>
  <records><record><uin>B1</uin><type>pamphlet</type></record></records>
</result></apiResponse>`)
	assert.ErrorContains(t, err, "unmapped supplier code")
}
