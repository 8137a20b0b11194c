package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurora-ops/aurora/internal/aurora"
	"github.com/aurora-ops/aurora/internal/core/catalog"
	"github.com/aurora-ops/aurora/internal/core/command"
	"github.com/aurora-ops/aurora/internal/core/config"
	"github.com/aurora-ops/aurora/internal/core/speech"
	"github.com/aurora-ops/aurora/internal/data/stores"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	app := aurora.NewApp(&cfg, stores.NewTaskStore(), speech.NoopSpeaker{}, zerolog.Nop())
	return New(app)
}

func TestNew_GreetsOnce(t *testing.T) {
	m := newTestModel(t)
	require.Len(t, m.app.Assistant.History(), 1)

	// a second model over the same app must not greet again
	_ = New(m.app)
	assert.Len(t, m.app.Assistant.History(), 1)
}

func TestNew_DefaultMarketplaceFromConfig(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, catalog.MarketplaceAmazon, m.marketplace)
}

func TestNextMarketplace_Cycles(t *testing.T) {
	m := catalog.Marketplaces[0]
	seen := map[catalog.Marketplace]bool{}
	for range catalog.Marketplaces {
		seen[m] = true
		m = nextMarketplace(m)
	}
	assert.Len(t, seen, len(catalog.Marketplaces))
	assert.Equal(t, catalog.Marketplaces[0], m)

	assert.Equal(t, catalog.Marketplaces[0], nextMarketplace(catalog.Marketplace("unknown")))
}

func TestUpdate_MarketplaceSwitchClearsRows(t *testing.T) {
	m := newTestModel(t)
	m.rows = []catalog.OutputRow{{SKU: "AUR-TEE-01", Platform: m.marketplace}}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	updated := next.(Model)

	assert.Equal(t, nextMarketplace(catalog.MarketplaceAmazon), updated.marketplace)
	assert.Nil(t, updated.rows)
}

func TestUpdate_BoardMarketplaceKey(t *testing.T) {
	m := newTestModel(t)
	m.focus = focusBoard
	m.rows = []catalog.OutputRow{{SKU: "NBL-SAE-23"}}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	updated := next.(Model)

	assert.Equal(t, catalog.MarketplaceFlipkart, updated.marketplace)
	assert.Nil(t, updated.rows)
}

func TestUpdate_LoadSample(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	updated := next.(Model)

	assert.Equal(t, sampleInput, updated.rawCatalog)
	assert.Contains(t, updated.status, "sample")
}

func TestUpdate_OutcomeAppliesState(t *testing.T) {
	m := newTestModel(t)

	rows := []catalog.OutputRow{{SKU: "LUM-LMP-09"}}
	next, _ := m.Update(outcomeMsg{outcome: command.Outcome{CatalogRows: rows}})
	updated := next.(Model)

	assert.Equal(t, rows, updated.rows)
	assert.NoError(t, updated.err)
}

func TestUpdate_ExportWithoutRowsErrors(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlE})
	require.NotNil(t, cmd)

	msg := cmd()
	errM, ok := msg.(errMsg)
	require.True(t, ok)
	assert.ErrorIs(t, errM.err, catalog.ErrNoRecords)
}
