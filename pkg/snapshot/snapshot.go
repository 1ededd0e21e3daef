package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/sanity-io/litter"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"thegang-server/internal/util"
)

// UpdateEnv rewrites golden files instead of comparing against them when set to "1"
const UpdateEnv = "THEGANG_UPDATE_SNAPSHOTS"

var callCount = make(map[string]int)

// ValidateSnapshot compares obj, encoded as indented JSON, against testdata/{func}-{call}.json
// depth is the number of helper frames between the test function and this call
func ValidateSnapshot(t *testing.T, obj interface{}, depth int, msgAndArgs ...interface{}) {
	t.Helper()

	filename := goldenFile(2 + depth)
	if !Compare(t, filename, obj, msgAndArgs...) {
		t.Logf("got:\n%s", litter.Sdump(obj))
	}
}

// Compare checks obj against the golden file and reports any difference to t
// A missing golden file is a failure unless UpdateEnv is set
func Compare(t assert.TestingT, filename string, obj interface{}, msgAndArgs ...interface{}) bool {
	got, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Errorf("could not encode %T: %v", obj, err)
		return false
	}

	if util.Getenv(UpdateEnv, "") == "1" {
		if err := write(filename, got); err != nil {
			t.Errorf("could not write %s: %v", filename, err)
			return false
		}

		return true
	}

	expects, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		t.Errorf("golden file %s is missing, run the test with %s=1 to create it", filename, UpdateEnv)
		return false
	} else if err != nil {
		t.Errorf("could not read %s: %v", filename, err)
		return false
	}

	return assert.Equal(t, strings.TrimSpace(string(expects)), strings.TrimSpace(string(got)), msgAndArgs...)
}

// goldenFile names the file after the calling test function and how often it has called
func goldenFile(skip int) string {
	pc, _, _, _ := runtime.Caller(skip)
	funcName := filepath.Base(runtime.FuncForPC(pc).Name())

	call := callCount[funcName]
	callCount[funcName] = call + 1

	return filepath.Join("testdata", fmt.Sprintf("%s-%d.json", funcName, call))
}

func write(filename string, data []byte) error {
	logrus.WithField("filename", filename).Info("writing golden file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}

	return os.WriteFile(filename, append(data, '\n'), 0644)
}
