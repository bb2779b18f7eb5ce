package silkrau_test

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/twinfer/silkrau/pkg/silkrau"
	"github.com/twinfer/silkrau/testutil"
)

// Example converts a creature file to YAML.
func Example() {
	dir, err := os.MkdirTemp("", "silkrau-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	input := filepath.Join(dir, "goblin.slb")
	if err := os.WriteFile(input, testutil.Creature(), 0644); err != nil {
		log.Fatal(err)
	}

	factory := silkrau.NewFactory(silkrau.DefaultRegistry())
	converter, err := factory.BuildConverter("creature", silkrau.SLBToYaml)
	if err != nil {
		log.Fatal(err)
	}

	output := filepath.Join(dir, "goblin.yaml")
	if err := converter.Convert(input, output); err != nil {
		log.Fatal(err)
	}

	text, err := os.ReadFile(output)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(string(text))
	// Output:
	// name: Goblin
	// health: 30
	// speed: 1.5
	// level: 3
	// tags:
	//   - green
	//   - small
}

// ExampleBadFormatError shows how to tell malformed input apart from other
// failures.
func ExampleBadFormatError() {
	dir, err := os.MkdirTemp("", "silkrau-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	input := filepath.Join(dir, "broken.slb")
	if err := os.WriteFile(input, []byte("CRTR"), 0644); err != nil {
		log.Fatal(err)
	}

	factory := silkrau.NewFactory(silkrau.DefaultRegistry())
	converter, err := factory.BuildConverter("creature", silkrau.SLBToYaml)
	if err != nil {
		log.Fatal(err)
	}

	err = converter.Convert(input, filepath.Join(dir, "broken.yaml"))

	var badFormat *silkrau.BadFormatError
	if errors.As(err, &badFormat) {
		fmt.Println("bad format:", badFormat.Cause)
	}
	// Output:
	// bad format: creature.name: unexpected EOF
}

// ExampleFactory_ValidConversions lists the supported conversions.
func ExampleFactory_ValidConversions() {
	factory := silkrau.NewFactory(silkrau.DefaultRegistry())
	for _, conversion := range factory.ValidConversions() {
		fmt.Println(conversion)
	}
	// Output:
	// SLB to Yaml
	// Yaml to SLB
}
