// Package swag builds Swagger 2.0 documents from validated records.
//
// Every record (Info, Operation, Parameter, Schema, ...) is constructed with
// its New* function, which validates it and every record nested in it. A
// record is then flattened with ToDict into an ordered Map carrying the
// exact Swagger key names, or serialized with ToJSON and ToYAML:
//
//	info, _ := swag.NewInfo(swag.Info{Title: "Users", Version: "v1"})
//	doc, err := swag.NewDocument(swag.Document{
//		Info:     info,
//		BasePath: "/",
//		Schemes:  []string{"https"},
//	})
//	out, err := swag.ToYAML(doc)
package swag

// Bool returns a pointer to b, for the optional boolean fields.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to i, for the optional length and count fields.
func Int(i int64) *int64 { return &i }

// Float returns a pointer to f, for the optional numeric bounds.
func Float(f float64) *float64 { return &f }
