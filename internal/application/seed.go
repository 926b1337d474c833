package application

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/projetvet/projetvet-go/internal/domain/schema"
)

// SeedSchemas imports every schema document found in dir. The file name
// without extension is used as the form set idnumber. Errors are logged
// and skipped so a bad document cannot block boot.
func SeedSchemas(svc *SchemaService, dir string) {
	if dir == "" {
		return
	}
	files, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("Schema seed: cannot read %s: %v", dir, err)
		return
	}

	for _, f := range files {
		if f.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(f.Name()))
		if ext != ".yaml" && ext != ".yml" && ext != ".json" {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, f.Name()))
		if err != nil {
			log.Printf("Schema seed: read %s: %v", f.Name(), err)
			continue
		}

		var doc schema.ImportDocument
		if ext == ".json" {
			err = json.Unmarshal(data, &doc)
		} else {
			err = yaml.Unmarshal(data, &doc)
		}
		if err != nil {
			log.Printf("Schema seed: parse %s: %v", f.Name(), err)
			continue
		}

		formset := strings.TrimSuffix(f.Name(), filepath.Ext(f.Name()))
		cats, fields, err := svc.Import(formset, doc)
		if err != nil {
			log.Printf("Schema seed: import %s: %v", formset, err)
			continue
		}
		log.Printf("Schema seed: %s imported (%d categories, %d fields)", formset, cats, fields)
	}
}
