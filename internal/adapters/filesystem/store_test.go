package filesystem

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"

	"contentmgr/internal/domain"
)

const rarities = `{
    "common": {
        "color": "white"
    },
    "rare": {
        "color": "blue"
    }
}
`

// fixedClock returns a clock frozen at 2024-03-05 10:20:30 UTC
func fixedClock() func() time.Time {
	t := time.Date(2024, 3, 5, 10, 20, 30, 0, time.UTC)
	return func() time.Time { return t }
}

func setupTestStore(t *testing.T) (*Store, billy.Filesystem) {
	t.Helper()

	fs := memfs.New()
	if err := util.WriteFile(fs, "data/rarities.json", []byte(rarities), 0644); err != nil {
		t.Fatalf("failed to seed rarities: %v", err)
	}
	return NewStore(fs, domain.DefaultCatalog(), WithClock(fixedClock())), fs
}

func TestLoad_ParsesDocument(t *testing.T) {
	store, _ := setupTestStore(t)

	doc, err := store.Load(context.Background(), domain.DocRarities)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	keys := doc.Keys()
	if len(keys) != 2 || keys[0] != "common" || keys[1] != "rare" {
		t.Errorf("expected keys [common rare], got %v", keys)
	}
}

func TestLoad_MissingOrBrokenFileIsEmpty(t *testing.T) {
	store, fs := setupTestStore(t)
	ctx := context.Background()

	doc, err := store.Load(ctx, domain.DocWeapons)
	if err != nil {
		t.Fatalf("Load of missing file failed: %v", err)
	}
	if !doc.IsMap() || doc.Len() != 0 {
		t.Errorf("expected empty mapping for missing file, got %s", doc.Text())
	}

	for _, content := range []string{`{"broken": `, `[1, 2, 3]`} {
		if err := util.WriteFile(fs, "data/skills.json", []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		doc, err = store.Load(ctx, domain.DocSkills)
		if err != nil {
			t.Fatalf("Load of %q failed: %v", content, err)
		}
		if !doc.IsMap() || doc.Len() != 0 {
			t.Errorf("expected empty mapping for %q", content)
		}
	}
}

func TestLoad_UnknownDocument(t *testing.T) {
	store, _ := setupTestStore(t)

	_, err := store.Load(context.Background(), "Spells")
	if !errors.Is(err, domain.ErrUnknownDocument) {
		t.Errorf("expected ErrUnknownDocument, got %v", err)
	}
}

func TestSave_WritesBackupThenDocument(t *testing.T) {
	store, fs := setupTestStore(t)
	ctx := context.Background()

	doc, err := store.Load(ctx, domain.DocRarities)
	if err != nil {
		t.Fatal(err)
	}
	epic := domain.NewMap()
	epic.Set("color", domain.String("purple"))
	doc.Set("epic", epic)

	if err := store.Save(ctx, domain.DocRarities, doc); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	backupPath := "data/rarities.json.bak.20240305-102030"
	backup, err := util.ReadFile(fs, backupPath)
	if err != nil {
		t.Fatalf("expected backup at %s: %v", backupPath, err)
	}
	if string(backup) != rarities {
		t.Errorf("backup content mismatch:\n%s", backup)
	}

	saved, err := util.ReadFile(fs, "data/rarities.json")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(saved), "    \"epic\": {\n        \"color\": \"purple\"\n    }\n}\n") {
		t.Errorf("unexpected saved content:\n%s", saved)
	}

	// No temp files are left behind
	entries, err := fs.ReadDir("data")
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestSave_BackupNamesStrictlyIncrease(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	doc, err := store.Load(ctx, domain.DocRarities)
	if err != nil {
		t.Fatal(err)
	}

	// Same frozen clock for every save
	for i := 0; i < 3; i++ {
		if err := store.Save(ctx, domain.DocRarities, doc); err != nil {
			t.Fatalf("save %d failed: %v", i, err)
		}
	}

	backups, err := store.Backups(domain.DocRarities)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"data/rarities.json.bak.20240305-102030",
		"data/rarities.json.bak.20240305-102031",
		"data/rarities.json.bak.20240305-102032",
	}
	if len(backups) != len(want) {
		t.Fatalf("expected %d backups, got %d", len(want), len(backups))
	}
	for i, b := range backups {
		if b.Path != want[i] {
			t.Errorf("backup %d: expected %s, got %s", i, want[i], b.Path)
		}
	}
}

func TestSave_NewFileHasNoBackupAndCreatesDirectories(t *testing.T) {
	store, fs := setupTestStore(t)
	ctx := context.Background()

	doc := domain.NewMap()
	doc.Set("melee", domain.NewMap())
	if err := store.Save(ctx, domain.DocWeapons, doc); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := fs.Stat("data/items/weapons.json"); err != nil {
		t.Errorf("expected weapons file: %v", err)
	}
	backups, err := store.Backups(domain.DocWeapons)
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups for a new file, got %v", backups)
	}

	reloaded, err := store.Load(ctx, domain.DocWeapons)
	if err != nil {
		t.Fatal(err)
	}
	if !reloaded.Equal(doc) {
		t.Errorf("reloaded document differs: %s", reloaded.Text())
	}
}

func TestSaveAll_ReportsFailuresAndKeepsGoing(t *testing.T) {
	store, fs := setupTestStore(t)
	ctx := context.Background()

	docs := domain.DocumentSet{
		domain.DocRarities:  domain.NewMap(),
		domain.DocMaterials: domain.NewMap(),
		"Spells":            domain.NewMap(),
	}
	bad := domain.NewMap()
	bad.Set("nan", domain.Float(math.NaN()))
	docs[domain.DocConsumables] = bad

	err := store.SaveAll(ctx, docs)
	var failures *domain.SaveFailures
	if !errors.As(err, &failures) {
		t.Fatalf("expected SaveFailures, got %v", err)
	}

	names := failures.Names()
	if len(names) != 2 || names[0] != domain.DocConsumables || names[1] != "Spells" {
		t.Errorf("unexpected failed names: %v", names)
	}
	if !errors.Is(err, domain.ErrUnknownDocument) {
		t.Errorf("expected SaveFailures to wrap ErrUnknownDocument")
	}

	if _, err := fs.Stat("data/items/materials.json"); err != nil {
		t.Errorf("materials should have been saved: %v", err)
	}
}

func TestBackupName(t *testing.T) {
	at := time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC)
	if got := BackupName("data/classes.json", at); got != "data/classes.json.bak.20231231-235959" {
		t.Errorf("unexpected backup name %s", got)
	}

	// Zoned times are stamped in UTC
	cet := time.FixedZone("CET", 3600)
	at = time.Date(2024, 1, 1, 0, 30, 0, 0, cet)
	if got := BackupName("data/classes.json", at); got != "data/classes.json.bak.20231231-233000" {
		t.Errorf("unexpected backup name %s", got)
	}
}

func TestSave_BackupNamesFollowClockAcrossDSTChange(t *testing.T) {
	fs := memfs.New()
	if err := util.WriteFile(fs, "data/rarities.json", []byte(rarities), 0644); err != nil {
		t.Fatalf("failed to seed rarities: %v", err)
	}

	// 01:30 EDT then 01:10 EST: the wall clock goes back, the instant moves on
	edt := time.FixedZone("EDT", -4*3600)
	est := time.FixedZone("EST", -5*3600)
	times := []time.Time{
		time.Date(2024, 11, 3, 1, 30, 0, 0, edt),
		time.Date(2024, 11, 3, 1, 10, 0, 0, est),
	}
	current := times[0]
	store := NewStore(fs, domain.DefaultCatalog(), WithClock(func() time.Time { return current }))
	ctx := context.Background()

	doc, err := store.Load(ctx, domain.DocRarities)
	if err != nil {
		t.Fatal(err)
	}
	for i, at := range times {
		current = at
		if err := store.Save(ctx, domain.DocRarities, doc); err != nil {
			t.Fatalf("save %d failed: %v", i, err)
		}
	}

	backups, err := store.Backups(domain.DocRarities)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"data/rarities.json.bak.20241103-053000",
		"data/rarities.json.bak.20241103-061000",
	}
	if len(backups) != len(want) {
		t.Fatalf("expected %d backups, got %d", len(want), len(backups))
	}
	for i, b := range backups {
		if b.Path != want[i] {
			t.Errorf("backup %d: expected %s, got %s", i, want[i], b.Path)
		}
	}
}

func TestOSStore_SaveKeepsFileMode(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "data", "rarities.json")
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(target, []byte(rarities), 0640); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(target, 0640); err != nil {
		t.Fatal(err)
	}

	store := NewOSStore(root, domain.DefaultCatalog())
	ctx := context.Background()

	doc, err := store.Load(ctx, domain.DocRarities)
	if err != nil {
		t.Fatal(err)
	}
	doc.Set("epic", domain.NewMap())
	if err := store.Save(ctx, domain.DocRarities, doc); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatal(err)
	}
	if got := info.Mode().Perm(); got != 0640 {
		t.Errorf("expected mode 0640 after save, got %o", got)
	}

	// Documents written for the first time get the default mode
	if err := store.Save(ctx, domain.DocMaterials, domain.NewMap()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	path, err := store.FilePath(domain.DocMaterials)
	if err != nil {
		t.Fatal(err)
	}
	info, err = os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := info.Mode().Perm(); got != DocumentMode {
		t.Errorf("expected mode %o for a new document, got %o", DocumentMode, got)
	}
}

func TestFilePath(t *testing.T) {
	store, _ := setupTestStore(t)

	path, err := store.FilePath(domain.DocArmors)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(path, "data/items/armors.json") {
		t.Errorf("unexpected path %s", path)
	}
}
