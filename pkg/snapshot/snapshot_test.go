package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"thegang-server/internal/util"
)

type recorder struct {
	errors []string
}

func (r *recorder) Errorf(format string, args ...interface{}) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func TestValidateSnapshot(t *testing.T) {
	ValidateSnapshot(t, map[string]interface{}{"round": "flop", "chips": []int{1, 2, 3}}, 0)
	ValidateSnapshot(t, map[string]string{"a": "b"}, 0)
}

func TestCompare(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()
	filename := filepath.Join(dir, "testdata", "golden.json")
	defer util.SetEnv(UpdateEnv, "")()

	r := &recorder{}
	a.False(Compare(r, filename, []int{1, 2}))
	a.Len(r.errors, 1)
	a.Contains(r.errors[0], "is missing")
	_, err := os.Stat(filename)
	a.True(os.IsNotExist(err))

	restore := util.SetEnv(UpdateEnv, "1")
	r = &recorder{}
	a.True(Compare(r, filename, []int{1, 2}))
	restore()
	a.Empty(r.errors)

	b, err := os.ReadFile(filename)
	a.NoError(err)
	a.Equal("[\n  1,\n  2\n]\n", string(b))

	r = &recorder{}
	a.True(Compare(r, filename, []int{1, 2}))
	a.Empty(r.errors)

	r = &recorder{}
	a.False(Compare(r, filename, []int{2, 1}))
	a.NotEmpty(r.errors)
}
