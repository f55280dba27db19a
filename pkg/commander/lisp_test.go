//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package commander

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/timburks/mote/pkg/types"
)

func TestLispKeys(t *testing.T) {
	e, c := setup("one", "two", "three")
	c.ParseEval(`(keys "jdd")`)
	assert.Equal(t, []string{"one", "three"}, contents(e))
	c.ParseEval(`(undo)`)
	assert.Equal(t, []string{"one", "two", "three"}, contents(e))
	assert.Equal(t, 1, e.GetLineNumber())
}

func TestLispNamedKeys(t *testing.T) {
	e, c := setup("one", "two")
	c.ParseEval(`(key "down")`)
	c.ParseEval(`(keys "iX")`)
	c.ParseEval(`(key "esc")`)
	assert.Equal(t, []string{"one", "Xtwo"}, contents(e))
	assert.Equal(t, types.ModeEdit, e.GetMode())
}

func TestLispUnknownKey(t *testing.T) {
	e, c := setup("one")
	result := c.ParseEval(`(key "bogus")`)
	assert.Contains(t, result, "bogus")
	assert.Equal(t, []string{"one"}, contents(e))
}

func TestLispEvalError(t *testing.T) {
	_, c := setup("one")
	_, err := c.Eval(`(key "bogus")`)
	assert.Error(t, err)
	result, err := c.Eval(`(line-count)`)
	assert.NoError(t, err)
	assert.Equal(t, "1", result)
}

func TestLispResize(t *testing.T) {
	e, c := setup("one")
	c.ParseEval(`(resize 12 34)`)
	assert.Equal(t, types.Size{Rows: 12, Cols: 34}, e.GetSize())
}

func TestLispDump(t *testing.T) {
	_, c := setup("alpha", "beta")
	var out bytes.Buffer
	c.SetOutput(&out)
	c.ParseEval(`(dump)`)
	assert.Contains(t, out.String(), "alpha")
	assert.Contains(t, out.String(), "NORMAL")
	assert.Contains(t, out.String(), "No Name")
}

func TestLispScriptFile(t *testing.T) {
	e, c := setup("first", "second", "third")
	dir := t.TempDir()
	output := filepath.Join(dir, "out.txt")
	script := filepath.Join(dir, "edit.lisp")
	source := `(keys "jjdd")
(keys "ggx")
(write-file "` + output + `")
`
	assert.NoError(t, os.WriteFile(script, []byte(source), 0644))
	assert.NoError(t, c.ParseEvalFile(script))
	assert.Equal(t, []string{"first", "econd"}, contents(e))
	written, err := os.ReadFile(output)
	assert.NoError(t, err)
	assert.Equal(t, "first\necond\n", string(written))
}

func TestLispMissingScript(t *testing.T) {
	_, c := setup("a")
	err := c.ParseEvalFile(filepath.Join(t.TempDir(), "missing.lisp"))
	assert.Error(t, err)
}

func TestLispQueries(t *testing.T) {
	_, c := setup("first", "second")
	c.ParseEval(`(keys "jl")`)
	assert.Equal(t, "2", strings.TrimSpace(c.ParseEval(`(line-count)`)))
	assert.Equal(t, "1", strings.TrimSpace(c.ParseEval(`(cursor-row)`)))
	assert.Equal(t, "1", strings.TrimSpace(c.ParseEval(`(cursor-col)`)))
	assert.Contains(t, c.ParseEval(`(line 1)`), "second")
	assert.Contains(t, c.ParseEval(`(mode)`), "NORMAL")
}
