package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/indigo-web/h1req/config"
	"github.com/indigo-web/h1req/transport"
	json "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var errBodyIncomplete = errors.New("cannot dump the request, body incomplete")

func main() {
	var (
		file    = flag.String("file", "-", "file containing a raw request, - for stdin")
		chunk   = flag.Int("chunk", 0, "feed the parser by chunks of this size (0 means read buffer size)")
		dump    = flag.Bool("dump", false, "print the canonical request dump instead of summary")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg := config.Default()
	if *chunk > 0 {
		cfg.NET.ReadBufferSize = *chunk
	}

	if err := parseFile(*file, cfg, *dump, log.WithField("file", *file)); err != nil {
		log.WithError(err).Fatal("cannot parse the request")
	}
}

func parseFile(name string, cfg *config.Config, dump bool, log *logrus.Entry) error {
	src, err := open(name)
	if err != nil {
		return err
	}

	defer src.Close()

	return run(src, os.Stdout, cfg, dump, log)
}

func open(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	return os.Open(name)
}

func run(src io.Reader, out io.Writer, cfg *config.Config, dump bool, log *logrus.Entry) error {
	client := transport.NewClient(src, cfg.NET.ReadTimeout, make([]byte, cfg.NET.ReadBufferSize))
	request, err := transport.NewReader(client, cfg, log).Read()
	if err != nil {
		return err
	}

	if dump {
		canonical := request.Dump()
		if canonical == nil {
			return fmt.Errorf("%w: chunked framing is %s", errBodyIncomplete, request.Chunked())
		}

		_, err = out.Write(canonical)
		return err
	}

	return json.NewEncoder(out).Encode(summarize(request))
}
