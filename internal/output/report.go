package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/fincast/portfolio-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport runs the named formatter and writes its output to a
// timestamped file in the working directory.
func GenerateReport(results *domain.ScenarioComparison, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s", ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "))
	}
	_, err := WriteFormatted(f, results, FileExtension(f.Name()))
	return err
}

// SaveConfiguration writes a configuration back out as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
