package views

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"

	"contentmgr/internal/adapters/filesystem"
	"contentmgr/internal/application"
	"contentmgr/internal/domain"
)

var fixtures = map[string]string{
	"data/classes.json": `{
    "playable": {
        "knight": {"base_vit": 8, "base_str": 7, "base_dex": 4, "base_int": 2, "skills": ["slash"]},
        "mage": {"base_vit": 3, "base_str": 2, "base_dex": 4, "base_int": 9, "skills": ["fireball"]}
    },
    "non_playable": {}
}`,
	"data/skills.json": `{
    "skills": {
        "fireball": {"name": "Fireball", "element": "Fire", "power": 12, "mp_cost": 5},
        "slash": {"name": "Slash", "element": "NONE", "power": 6}
    }
}`,
	"data/rarities.json": `{"common": {"color": "white"}, "rare": {"color": "blue"}}`,
	"data/items/weapons.json": `{
    "melee": {
        "one_hand": {
            "iron_sword": {"name": "Iron Sword", "value": 12, "rarity": "common"}
        }
    },
    "ranged": {
        "bow": {
            "short_bow": {"name": "Short Bow", "value": 20, "rarity": "rare"}
        }
    }
}`,
}

func newTestSession(t *testing.T) (*application.Session, billy.Filesystem) {
	t.Helper()
	fs := memfs.New()
	for path, content := range fixtures {
		if err := util.WriteFile(fs, path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	store := filesystem.NewStore(fs, domain.DefaultCatalog())
	session := application.NewSession(store, domain.DefaultCatalog(), nil)
	if err := session.LoadAll(context.Background()); err != nil {
		t.Fatal(err)
	}
	return session, fs
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
)

// msgOf runs a command and returns its message, or nil
func msgOf(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

func rowLabels(m *BrowserModel) []string {
	labels := make([]string, len(m.rows))
	for i, r := range m.rows {
		labels[i] = r.Label
	}
	return labels
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
