package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/beevik/etree"
	"github.com/rs/zerolog/log"

	"github.com/fedisphere/fedxml"
	"github.com/fedisphere/fedxml/config"
	_ "github.com/fedisphere/fedxml/entities"
	"github.com/fedisphere/fedxml/envelope"
	"github.com/fedisphere/fedxml/internal"
)

func main() {
	mode := flag.String("mode", "serve", "serve|decode")
	file := flag.String("file", "", "decode mode: envelope XML file (default stdin)")
	flag.Parse()

	internal.InitLogging("fedxmld")

	switch *mode {
	case "serve":
		if err := config.LoadAppConfig(); err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
		fedxml.StartServer()
		fedxml.HandleGracefulShutdown()
	case "decode":
		if err := decode(*file); err != nil {
			log.Fatal().Err(err).Msg("decode failed")
		}
	default:
		log.Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}

// decode reads one envelope document, unpacks it, and prints the entity
// as indented JSON.
func decode(path string) error {
	doc := etree.NewDocument()
	if path == "" {
		if _, err := doc.ReadFrom(os.Stdin); err != nil {
			return err
		}
	} else if err := doc.ReadFromFile(path); err != nil {
		return err
	}

	ent, err := envelope.Unpack(doc.Root())
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(ent, "", "  ")
	if err != nil {
		return err
	}
	fmt.Printf("%s %s\n", ent.EntityType().Name, out)
	return nil
}
