package onset

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsphweid/autochart/midi"
	"github.com/jsphweid/autochart/model"
	"github.com/pkg/errors"
)

var ErrUnsupportedInput = errors.New("unsupported input file")

// Extensions lists every input kind Load understands.
var Extensions = []string{".json", ".mid", ".midi"}

func Decode(r io.Reader) (model.Analysis, error) {
	var a model.Analysis
	if err := json.NewDecoder(r).Decode(&a); err != nil {
		return a, errors.Wrap(err, "could not decode analysis")
	}
	return a, nil
}

func LoadJSON(path string) (model.Analysis, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Analysis{}, errors.Wrap(err, "could not open analysis")
	}
	defer f.Close()
	return Decode(f)
}

// Load picks an analyzer by file extension. Errors are analyzer failures
// and are returned as they are, wrapped with the path.
func Load(path string) (model.Analysis, error) {
	var a model.Analysis
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		a, err = LoadJSON(path)
	case ".mid", ".midi":
		a, err = midi.AnalyzeFile(path)
	default:
		err = ErrUnsupportedInput
	}
	if err != nil {
		return a, errors.Wrapf(err, "analysis of %v failed", path)
	}
	return a, nil
}
