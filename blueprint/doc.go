// Package blueprint provides import of YAML site blueprints.
//
// A blueprint describes users and houses — with nested floors, rooms,
// and devices — in a single document. Apply populates a registry
// exclusively through its public operations, so imported data passes
// every validation rule an API caller would face, and a blueprint that
// fails part-way leaves the registry with whatever was created before
// the failing entry (each operation is atomic, the document is not).
//
// # Usage
//
//	bp, err := blueprint.ParseFile("site.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := blueprint.Apply(reg, bp)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("imported %d devices\n", result.Devices)
package blueprint
