// Command email-preview renders every email template with its sample data
// into a directory so the output can be opened in a browser.
package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/deppfellow/portfolio-api/internal/lib/email"
	"github.com/rs/zerolog"
)

func main() {
	outDir := flag.String("out", "tmp/email-preview", "directory the rendered templates are written to")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", *outDir).Msg("failed to create output directory")
	}

	for name := range email.PreviewData {
		html, text, err := email.Preview(name)
		if err != nil {
			log.Fatal().Err(err).Str("template", string(name)).Msg("failed to render template")
		}

		for ext, body := range map[string]string{".html": html, ".txt": text} {
			path := filepath.Join(*outDir, string(name)+ext)
			if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
				log.Fatal().Err(err).Str("path", path).Msg("failed to write preview")
			}
			log.Info().Str("path", path).Msg("preview written")
		}
	}
}
