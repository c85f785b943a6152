package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/swaggyp/internal/blueprint"
	"github.com/mark3labs/swaggyp/internal/config"
	"github.com/mark3labs/swaggyp/swag"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
	kyaml "sigs.k8s.io/yaml"
)

var renderRunner = runRender

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a blueprint as a Swagger 2.0 or OpenAPI 3 document",
		Long: "Render a blueprint as a Swagger 2.0 or OpenAPI 3 document. " +
			"Options can be provided via flags, config files, or defaults.",
		Example: strings.TrimSpace(`  swaggyp render --input blueprint.yaml
  swaggyp render -i blueprint.yaml --format json --out swagger.json
  swaggyp --config swaggyp.yaml render --strict`),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd)
			if err != nil {
				return newUsageError(fmt.Sprintf("render: %v", err))
			}
			if cfg.Verbose {
				if err := setupLogging(cmd.ErrOrStderr(), true); err != nil {
					return err
				}
			}
			return renderRunner(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}

	config.BindFlags(cmd)
	return cmd
}

func runRender(ctx context.Context, stdout io.Writer, cfg *config.Config) error {
	// 1) Load and validate the blueprint (file or http/https URL)
	var opts []blueprint.Option
	if cfg.HTTPTimeout > 0 {
		opts = append(opts, blueprint.WithHTTPTimeout(cfg.HTTPTimeout))
	}
	if cfg.Retries > 0 {
		opts = append(opts, blueprint.WithMaxRetries(cfg.Retries))
	}
	doc, err := blueprint.Load(ctx, cfg.Input, opts...)
	if err != nil {
		var be *blueprint.Error
		if errors.As(err, &be) {
			msg := be.Message
			if be.Location != "" {
				msg = fmt.Sprintf("%s\nLocation: %s", msg, be.Location)
			}
			if be.Field != "" {
				msg = fmt.Sprintf("%s\nField: %s", msg, be.Field)
			}
			return wrapUsageError(msg, err)
		}
		return err
	}

	// 2) Lint rules spanning several records
	findings := swag.Lint(doc)
	for _, f := range findings {
		klog.Warningf("lint: %s", f)
	}
	if cfg.Strict && len(findings) > 0 {
		lines := make([]string, 0, len(findings))
		for _, f := range findings {
			lines = append(lines, "- "+f.String())
		}
		return newUsageError(fmt.Sprintf("render: %d lint finding(s) in strict mode:\n%s", len(findings), strings.Join(lines, "\n")))
	}

	// 3) Encode
	data, err := renderDocument(ctx, doc, cfg.Format)
	if err != nil {
		var ce *swag.ConversionError
		if errors.As(err, &ce) && ce.JSONPointer != "" {
			return wrapUsageError(fmt.Sprintf("render: %s\nPointer: %s", ce.Message, ce.JSONPointer), err)
		}
		return fmt.Errorf("render: %w", err)
	}

	// 4) Write
	if cfg.Out == "" {
		_, err := stdout.Write(data)
		return err
	}
	absOut, err := writeFileAtomic(cfg.Out, data)
	if err != nil {
		return wrapOutputError(err, cfg.Out)
	}
	klog.V(2).InfoS("Rendered document", "format", cfg.Format, "out", absOut, "bytes", len(data))
	fmt.Fprintf(stdout, "Wrote %s document to %s\n", cfg.Format, absOut)
	return nil
}

func renderDocument(ctx context.Context, doc *swag.Document, format string) ([]byte, error) {
	switch format {
	case config.FormatYAML, "":
		return swag.ToYAML(doc)
	case config.FormatJSON:
		raw, err := swag.ToJSON(doc)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return nil, err
		}
		buf.WriteByte('\n')
		return buf.Bytes(), nil
	case config.FormatOpenAPI3:
		v3, err := swag.ToOpenAPI3(ctx, doc)
		if err != nil {
			return nil, err
		}
		raw, err := json.Marshal(v3)
		if err != nil {
			return nil, err
		}
		return kyaml.JSONToYAML(raw)
	default:
		return nil, newUsageError(fmt.Sprintf("render: unsupported --format %q (allowed: yaml, json, openapi3)", format))
	}
}

// writeFileAtomic writes data to a unique temp file next to path and renames
// it into place, so concurrent writers never share a temp file.
func writeFileAtomic(path string, data []byte) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve output path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return "", fmt.Errorf("cannot create output directory: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(absPath), "."+filepath.Base(absPath)+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("cannot write temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("cannot write temp file: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("cannot write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("cannot write temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), absPath); err != nil {
		return "", fmt.Errorf("cannot rename into place: %w", err)
	}
	return absPath, nil
}

func wrapOutputError(err error, out string) error {
	// Provide clearer guidance for common FS failures.
	msg := err.Error()
	lower := strings.ToLower(msg)
	if strings.Contains(lower, "permission") || strings.Contains(lower, "read-only") || strings.Contains(lower, "output directory") || strings.Contains(lower, "rename") || strings.Contains(lower, "not a directory") {
		return newUsageError(fmt.Sprintf("output error for %s: %s\nHint: choose a different --out or check directory permissions.", out, msg))
	}
	return err
}
