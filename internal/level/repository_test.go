package level

import (
	"strings"
	"testing"
)

func TestNewRepositoryRejectsDuplicateID(t *testing.T) {
	a := validLevel()
	b := validLevel()
	b.Name = "copy"

	_, err := NewRepository([]Level{a, b})
	if err == nil {
		t.Fatal("NewRepository accepted two levels with the same id")
	}
	if !strings.Contains(err.Error(), "duplicate level id 1") {
		t.Errorf("error = %q, expected duplicate id mention", err)
	}
}

func TestNewRepositoryRejectsInvalidLevel(t *testing.T) {
	bad := validLevel()
	bad.Tiles[0] = "S."

	_, err := NewRepository([]Level{bad})
	if err == nil {
		t.Fatal("NewRepository accepted a level with a short row")
	}
}

func TestFind(t *testing.T) {
	repo, err := NewRepository([]Level{validLevel()})
	if err != nil {
		t.Fatalf("NewRepository failed: %v", err)
	}

	lvl, err := repo.Find(1)
	if err != nil {
		t.Fatalf("Find(1) failed: %v", err)
	}
	if lvl.Name != "valid" {
		t.Errorf("Find(1).Name = %q, expected %q", lvl.Name, "valid")
	}

	_, err = repo.Find(42)
	if err == nil {
		t.Fatal("Find(42) should fail")
	}
	if !strings.Contains(err.Error(), "no such level 42") {
		t.Errorf("error = %q, expected a no-such-level message", err)
	}
}

func TestListSortedByID(t *testing.T) {
	third := validLevel()
	third.ID = 3
	first := validLevel()
	first.ID = 1
	second := validLevel()
	second.ID = 2

	repo, err := NewRepository([]Level{third, first, second})
	if err != nil {
		t.Fatalf("NewRepository failed: %v", err)
	}
	if repo.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", repo.Len())
	}

	list := repo.List()
	for i, lvl := range list {
		if lvl.ID != i+1 {
			t.Errorf("List()[%d].ID = %d, expected %d", i, lvl.ID, i+1)
		}
	}
}

func TestLoadDir(t *testing.T) {
	repo, err := LoadDir("testdata/levels")
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if repo.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2 (one JSON, one YAML)", repo.Len())
	}

	jsonLvl, err := repo.Find(10)
	if err != nil {
		t.Fatalf("Find(10) failed: %v", err)
	}
	if jsonLvl.Name != "Test Grid" || jsonLvl.Width != 6 || jsonLvl.Height != 4 {
		t.Errorf("unexpected JSON level: %+v", jsonLvl)
	}

	yamlLvl, err := repo.Find(11)
	if err != nil {
		t.Fatalf("Find(11) failed: %v", err)
	}
	if yamlLvl.Name != "Yaml Grid" || yamlLvl.EnemyCount() != 1 {
		t.Errorf("unexpected YAML level: %+v", yamlLvl)
	}
}

func TestLoadDirMissing(t *testing.T) {
	_, err := LoadDir("testdata/does-not-exist")
	if err == nil {
		t.Fatal("LoadDir should fail for a missing directory")
	}
}

func TestLoadDirEmpty(t *testing.T) {
	_, err := LoadDir(t.TempDir())
	if err == nil {
		t.Fatal("LoadDir should fail when no level files are found")
	}
	if !strings.Contains(err.Error(), "no level files") {
		t.Errorf("error = %q, expected a no-level-files message", err)
	}
}

func TestDefaultEmbeddedSet(t *testing.T) {
	repo, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	if repo.Len() == 0 {
		t.Fatal("embedded level set is empty")
	}
	for _, lvl := range repo.List() {
		if err := lvl.Validate(); err != nil {
			t.Errorf("embedded level %d fails validation: %v", lvl.ID, err)
		}
	}
}
