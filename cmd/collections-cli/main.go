package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-collections/pkg/config"
	"github.com/goliatone/go-collections/pkg/export"
	"github.com/goliatone/go-collections/pkg/registry"
	"github.com/goliatone/go-collections/pkg/scaffold"
)

func main() {
	configDir := flag.String("config", "collections", "directory holding collection definitions")
	slug := flag.String("collection", "", "collection slug to operate on")
	action := flag.String("action", "fields", "one of: fields, validate, schema, scaffold")
	document := flag.String("document", "", "JSON document to validate")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	if *action == "scaffold" {
		runScaffold(*output)
		return
	}

	collection := loadCollection(*configDir, *slug)

	switch *action {
	case "fields":
		emit(*output, mustMarshal(collection.FlatFields()))
	case "schema":
		emit(*output, mustMarshal(export.CollectionSchema(collection)))
	case "validate":
		if *document == "" {
			log.Fatal("validate requires -document")
		}
		doc := loadDocument(*document)
		violations := collection.ValidateDocument(doc)
		emit(*output, mustMarshal(violations))
		if len(violations) > 0 {
			os.Exit(1)
		}
	default:
		log.Fatalf("unknown action %q", *action)
	}
}

func loadCollection(dir, slug string) *registry.Collection {
	if slug == "" {
		log.Fatal("a -collection slug is required")
	}

	configs, err := config.LoadFS(os.DirFS(dir))
	if err != nil {
		log.Fatalf("Failed to load collection definitions: %v", err)
	}

	reg := registry.NewRegistry()
	if err := reg.RegisterAll(configs); err != nil {
		log.Fatalf("Failed to register collections: %v", err)
	}
	collection, ok := reg.Collection(slug)
	if !ok {
		log.Fatalf("unknown collection %q (have: %v)", slug, reg.Slugs())
	}
	return collection
}

func loadDocument(path string) map[string]any {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read document: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Fatalf("Failed to parse document: %v", err)
	}
	return doc
}

func runScaffold(output string) {
	outline, err := scaffold.CollectOutline(context.Background(), scaffold.NewSurveyDriver())
	if err != nil {
		log.Fatalf("Failed to collect outline: %v", err)
	}
	rendered, err := scaffold.Generate(nil, outline)
	if err != nil {
		log.Fatalf("Failed to render collection: %v", err)
	}
	emit(output, []byte(rendered))
}

func mustMarshal(value any) []byte {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal output: %v", err)
	}
	return data
}

func emit(output string, data []byte) {
	if output == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	fmt.Printf("Written to %s\n", output)
}
