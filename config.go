package main

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v2"
)

const moduleInfoFile = "myr.yaml"

// myrModule is the content of myr.yaml.
type myrModule struct {
	Package string   `yaml:"Package"`
	Sources []string `yaml:"Sources,omitempty"`
	Format  string   `yaml:"Format,omitempty"`
}

func readModuleInfo(path string) (myrModule, error) {
	var doc myrModule

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return doc, fmt.Errorf("error reading %s: %w", path, err)
	}

	err = yaml.Unmarshal(data, &doc)
	if err != nil {
		return doc, fmt.Errorf("error reading %s: %w", path, err)
	}
	if doc.Package == "" {
		return doc, fmt.Errorf("%s: no Package given", path)
	}

	return doc, nil
}

func writeModuleInfo(path string, doc myrModule) error {
	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}

	err = ioutil.WriteFile(path, out, 0644)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}

	return nil
}

// sourceFiles lists the files named by the module, or every *.myr file in
// dir when it names none. Relative names are taken relative to dir.
func (m myrModule) sourceFiles(dir string) ([]string, error) {
	if len(m.Sources) == 0 {
		files, err := filepath.Glob(filepath.Join(dir, "*.myr"))
		if err != nil {
			return nil, err
		}
		sort.Strings(files)
		return files, nil
	}

	var files []string
	for _, src := range m.Sources {
		if !filepath.IsAbs(src) {
			src = filepath.Join(dir, src)
		}
		files = append(files, src)
	}
	return files, nil
}

func (m myrModule) format() string {
	if m.Format == "" {
		return "repr"
	}
	return m.Format
}
