// Package yamlschema implements a YAML Schema validator for a dialect
// closely modelled on JSON Schema (draft 2020-12 subset): schemas are
// themselves YAML documents, loaded into a typed Schema graph and used to
// validate target YAML documents, producing diagnostics with line/column/byte
// provenance.
package yamlschema
