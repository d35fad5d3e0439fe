package harvest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cin7export/internal/cin7"
)

func TestHarvestAllIsolatesAccountFailures(t *testing.T) {
	failing := &fakeFetcher{account: "AlbertRogerUK", errAt: 1}
	healthy := &fakeFetcher{
		account: "AlbertRogerNetheEU",
		pages: [][]cin7.Document{
			{validDoc("CRN-1")},
			{validDoc("CRN-2")},
		},
	}

	harvesters := []*Harvester{
		NewHarvester(failing, CreditNotes, testAbbreviations, 0),
		NewHarvester(healthy, CreditNotes, testAbbreviations, 0),
	}

	results := HarvestAll(context.Background(), harvesters, testWindow(), 0)
	require.Len(t, results, 2)

	assert.Error(t, results[0].Err)
	assert.Empty(t, results[0].Records)

	require.NoError(t, results[1].Err)
	require.Len(t, results[1].Records, 2)
	assert.Equal(t, "CRN-1", results[1].Records[0].Reference)
	assert.Equal(t, "CRN-2", results[1].Records[1].Reference)

	merged := Merge(results)
	require.Len(t, merged, 2)
	for _, rec := range merged {
		assert.Equal(t, "AlbertRogerNetheEU", rec.SourceAccount)
	}
}

func TestHarvestAllPreservesPerAccountOrder(t *testing.T) {
	var harvesters []*Harvester
	accounts := []string{"a", "b", "c", "d"}
	for _, account := range accounts {
		fetcher := &fakeFetcher{
			account: account,
			pages: [][]cin7.Document{
				{validDoc(account + "-1"), validDoc(account + "-2")},
			},
		}
		harvesters = append(harvesters, NewHarvester(fetcher, CreditNotes, testAbbreviations, 0))
	}

	results := HarvestAll(context.Background(), harvesters, testWindow(), 2)
	require.Len(t, results, len(accounts))

	for i, result := range results {
		require.NoError(t, result.Err)
		require.Len(t, result.Records, 2)
		assert.Equal(t, accounts[i], result.Account)
		assert.Equal(t, accounts[i]+"-1", result.Records[0].Reference)
		assert.Equal(t, accounts[i]+"-2", result.Records[1].Reference)
	}
}

func TestMergeEmptyResults(t *testing.T) {
	assert.Empty(t, Merge(nil))
	assert.Empty(t, Merge([]Result{{Account: "a"}}))
}
