package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"object-builder/internal/schema"
)

func testOptions() []schema.FieldPathOption {
	return []schema.FieldPathOption{
		{Value: "Account", Label: "Account"},
		{Value: "Account::BillingCity", Label: "Account.BillingCity"},
		{Value: "Account::Name", Label: "Account.Name"},
		{Value: "Contact::Email", Label: "Contact.Email"},
		{Value: "Contact::Name", Label: "Contact.Name"},
	}
}

func TestRank(t *testing.T) {
	ranked := Rank("billing_city", testOptions())

	require.Len(t, ranked, 5)
	assert.Equal(t, "Account::BillingCity", ranked[0].Option.Value)
	assert.InDelta(t, 1.0, ranked[0].Score, 0.001)
}

func TestRank_TiesKeepOptionOrder(t *testing.T) {
	ranked := Rank("name", testOptions()).Top(2)

	require.Len(t, ranked, 2)
	assert.Equal(t, "Account::Name", ranked[0].Option.Value)
	assert.Equal(t, "Contact::Name", ranked[1].Option.Value)
}

func TestSuggest(t *testing.T) {
	assert.Equal(t, []string{"Account::Name", "Contact::Name"}, Suggest("Name", testOptions(), 3))
	assert.Equal(t, []string{"Contact::Email"}, Suggest("email", testOptions(), 1))
	assert.Empty(t, Suggest("zzzzzzzz", testOptions(), 3))
	assert.Empty(t, Suggest("", testOptions(), 3))
	assert.Empty(t, Suggest("Name", testOptions(), 0))
}

func TestCandidateList_Top(t *testing.T) {
	list := CandidateList{{Score: 1}, {Score: 0.5}}

	assert.Len(t, list.Top(1), 1)
	assert.Len(t, list.Top(5), 2)
}
