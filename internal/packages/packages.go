// Package packages supplies the sensor packages fed to the report: the
// built-in sample list or a YAML/JSON file.
package packages

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrEmptyFile is returned when a package file holds no packages
var ErrEmptyFile = errors.New("no packages in file")

// Package is one raw sensor reading: a workout code plus positional fields
type Package struct {
	Code string    `yaml:"code" json:"code"`
	Data []float64 `yaml:"data" json:"data"`
}

// Default returns the sample packages in report order
func Default() []Package {
	return []Package{
		{Code: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Code: "RUN", Data: []float64{15000, 1, 75}},
		{Code: "WLK", Data: []float64{9000, 1, 75, 180}},
	}
}

// Decode reads a list of packages. JSON input is accepted since it is valid YAML.
//
//	- code: RUN
//	  data: [15000, 1, 75]
func Decode(r io.Reader) ([]Package, error) {
	var pkgs []Package
	if err := yaml.NewDecoder(r).Decode(&pkgs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyFile
		}
		return nil, fmt.Errorf("decoding packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, ErrEmptyFile
	}
	return pkgs, nil
}

// LoadFile reads packages from path
func LoadFile(path string) ([]Package, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening package file: %w", err)
	}
	defer f.Close()

	pkgs, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pkgs, nil
}

// Load returns the packages in path, or Default when path is empty
func Load(path string) ([]Package, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
