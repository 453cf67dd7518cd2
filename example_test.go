package yamlj_test

import (
	"fmt"

	"github.com/anchorq/yamlj"
	yamlv3 "gopkg.in/yaml.v3"
)

// ExampleYAMLToJSON converts a small Y document to compact J text. The
// gopkg.in/yaml.v3 unmarshal alongside it is a sanity check, not part of
// the conversion itself: it shows that on the common core (plain
// scalars, flat mappings) standard YAML agrees with what this package
// treats as Y, before either dialect's own extensions diverge.
func ExampleYAMLToJSON() {
	src := "name: Ada\nborn: 1815\nactive: true\n"

	out, err := yamlj.YAMLToJSON(src, yamlj.WithIndent(0))
	if err != nil {
		panic(err)
	}
	fmt.Println(out)

	var baseline map[string]interface{}
	if err := yamlv3.Unmarshal([]byte(src), &baseline); err != nil {
		panic(err)
	}
	fmt.Println(baseline["name"], baseline["born"], baseline["active"])

	// Output:
	// {"name": "Ada","born": 1815,"active": true}
	// Ada 1815 true
}
