package backend

import (
	"os"
	"path/filepath"
	"testing"

	"flatacuties/feature/characters/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSeed(t *testing.T) {
	dir := t.TempDir()

	t.Run("JSON Server Layout", func(t *testing.T) {
		path := filepath.Join(dir, "db.json")
		data := `{"characters":[
			{"id":1,"name":"Mr. Cute","image":"mr-cute.png","votes":"3"},
			{"id":"2","name":"Mx. Monkey","image":"mx-monkey.png"}
		]}`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		records, err := LoadSeed(path)
		require.NoError(t, err)
		assert.Equal(t, []models.Character{
			{ID: 1, Name: "Mr. Cute", Image: "mr-cute.png", Votes: 3},
			{ID: 2, Name: "Mx. Monkey", Image: "mx-monkey.png", Votes: 0},
		}, records)
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := LoadSeed(filepath.Join(dir, "nope.json"))
		assert.ErrorContains(t, err, "failed to read seed file")
	})

	t.Run("Malformed", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"characters":`), 0o644))

		_, err := LoadSeed(path)
		assert.ErrorContains(t, err, "failed to parse seed file")
	})
}
