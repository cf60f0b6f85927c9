//go:generate mockgen -source=generator.go -destination=generator_mock.go -package=generator

package generator

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"go.yaml.in/yaml/v3"

	"bidmatch/internal/app/errors"
	"bidmatch/internal/app/ui/navigation"
	"bidmatch/internal/config"
	"bidmatch/internal/config/logger"
)

const templatePath = "templates/bidmatch.yaml.tmpl"

//go:embed templates/bidmatch.yaml.tmpl
var templateFS embed.FS

// Options contains the values written into bidmatch.yaml
type Options struct {
	StartPage string
	LogLevel  string
	LogFormat string
	AltScreen bool
	Mouse     bool
}

// DefaultOptions returns the options matching the built-in defaults
func DefaultOptions() Options {
	return Options{
		StartPage: config.DefaultStartPage,
		LogLevel:  config.DefaultLogLevel,
		LogFormat: config.DefaultLogFormat,
		AltScreen: config.DefaultAltScreen,
		Mouse:     config.DefaultMouse,
	}
}

// templateData is what the template sees
type templateData struct {
	Options
	Pages []string
}

// Generator defines the interface for generating bidmatch.yaml
type Generator interface {
	Generate(opts Options, force bool, dryRun bool) error
}

type generator struct {
	out io.Writer
	log logger.Logger
}

// NewGenerator creates a generator that prints dry runs to stdout
func NewGenerator(log logger.Logger) Generator {
	return NewGeneratorWithOutput(os.Stdout, log)
}

// NewGeneratorWithOutput creates a generator that prints dry runs to out
func NewGeneratorWithOutput(out io.Writer, log logger.Logger) Generator {
	return &generator{
		out: out,
		log: log,
	}
}

// Generate renders bidmatch.yaml and writes it to the working directory, or to the output on dry run
func (g *generator) Generate(opts Options, force bool, dryRun bool) error {
	if _, ok := navigation.Lookup(opts.StartPage); !ok {
		return fmt.Errorf("%w: %q", errors.ErrUnknownPage, opts.StartPage)
	}

	if !dryRun && !force {
		if _, err := os.Stat(config.FileName); err == nil {
			return fmt.Errorf("%w: %s, use --force to overwrite", errors.ErrConfigFileExists, config.FileName)
		}
	}

	content, err := render(opts)
	if err != nil {
		return err
	}

	if dryRun {
		_, err := io.Copy(g.out, bytes.NewReader(content))
		return err
	}

	if err := os.WriteFile(config.FileName, content, 0600); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToWriteConfig, err)
	}

	g.log.Info().Msgf("Generated %s", config.FileName)

	return nil
}

// render executes the template and checks that the result loads back as a valid config
func render(opts Options) ([]byte, error) {
	tmplContent, err := templateFS.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToRenderConfig, err)
	}

	tmpl, err := template.New(config.FileName).Funcs(template.FuncMap{"join": strings.Join}).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToRenderConfig, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData{Options: opts, Pages: navigation.IDs()}); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToRenderConfig, err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(buf.Bytes(), &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToRenderConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToRenderConfig, err)
	}

	return buf.Bytes(), nil
}
