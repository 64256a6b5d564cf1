package sammtest

// Namespaces of the footprint scenario.
const (
	FootprintSourceNS = "urn:samm:io.example.pcf:1.0.0#"
	FootprintTargetNS = "urn:samm:io.example.footprint:2.0.0#"
)

// FootprintSource builds the source side of the footprint scenario:
//
//	Pcf
//	  pcf (SingleEntity PcfEntity)
//	    id (string)
//	    dataQualityRating (SingleEntity DataQualityRating)
//	      technologicalDQR (decimal)
//	    attestations (List of Attestation, optional)
//	      attestationType (string)
//	  speed (Measurement float, km/h)
//	  remark (string, description only)
func FootprintSource() *Fixture {
	f := New(FootprintSourceNS)

	f.Aspect("Pcf", P("pcf"), P("speed"), P("remark").Opt())

	f.Characteristic("PcfCharacteristic", Char{Kind: "SingleEntity", DataType: "PcfEntity"})
	f.Property("pcf", Prop{PreferredName: "Product Carbon Footprint", Characteristic: "PcfCharacteristic"})
	f.Entity("PcfEntity", P("id"), P("dataQualityRating"), P("attestations").Opt())

	f.Simple("id", "Identifier", "string")

	f.Characteristic("DqrCharacteristic", Char{Kind: "SingleEntity", DataType: "DataQualityRating"})
	f.Property("dataQualityRating", Prop{Characteristic: "DqrCharacteristic"})
	f.Entity("DataQualityRating", P("technologicalDQR"))
	f.Simple("technologicalDQR", "Technological DQR", "decimal")

	f.Characteristic("AttestationList", Char{Kind: "List", DataType: "Attestation"})
	f.Property("attestations", Prop{Characteristic: "AttestationList"})
	f.Entity("Attestation", P("attestationType"))
	f.Simple("attestationType", "Attestation Type", "string")

	f.Characteristic("SpeedMeasurement", Char{Kind: "Measurement", DataType: XSD("float"), Unit: "kilometrePerHour"})
	f.Property("speed", Prop{PreferredName: "Speed", Characteristic: "SpeedMeasurement", ExampleValue: "100.0"})

	f.Characteristic("RemarkText", Char{Kind: "Text", DataType: XSD("string")})
	f.Property("remark", Prop{Description: "Free text remark on the product", Characteristic: "RemarkText"})

	return f
}

// FootprintTarget builds the target side of the footprint scenario:
//
//	ProductFootprint
//	  pcf (SingleEntity FootprintEntity)
//	    id (string)
//	    dataQualityRating (SingleEntity Quality)
//	      technologicalDQR (decimal)
//	    attestationType (string)
//	  velocity (Measurement float, m/s)
//	  comment (string, description only)
func FootprintTarget() *Fixture {
	f := New(FootprintTargetNS)

	f.Aspect("ProductFootprint", P("pcf"), P("velocity"), P("comment").Opt())

	f.Characteristic("FootprintCharacteristic", Char{Kind: "SingleEntity", DataType: "FootprintEntity"})
	f.Property("pcf", Prop{PreferredName: "Product Carbon Footprint", Characteristic: "FootprintCharacteristic"})
	f.Entity("FootprintEntity", P("id"), P("dataQualityRating"), P("attestationType"))

	f.Simple("id", "Identifier", "string")

	f.Characteristic("QualityCharacteristic", Char{Kind: "SingleEntity", DataType: "Quality"})
	f.Property("dataQualityRating", Prop{Characteristic: "QualityCharacteristic"})
	f.Entity("Quality", P("technologicalDQR"))
	f.Simple("technologicalDQR", "Technological DQR", "decimal")

	f.Simple("attestationType", "Attestation Type", "string")

	f.Characteristic("VelocityMeasurement", Char{Kind: "Measurement", DataType: XSD("float"), Unit: "metrePerSecond"})
	f.Property("velocity", Prop{PreferredName: "Speed", Characteristic: "VelocityMeasurement"})

	f.Characteristic("CommentText", Char{Kind: "Text", DataType: XSD("string")})
	f.Property("comment", Prop{Description: "Free text remarks on the product", Characteristic: "CommentText"})

	return f
}

// FootprintInstance is a source document of the footprint scenario.
const FootprintInstance = `{
  "pcf": {
    "id": "3893bb5d-da16-4dc1-9185-11d97476c254",
    "dataQualityRating": {"technologicalDQR": 2.0},
    "attestations": [
      {"attestationType": "Type 1"},
      {"attestationType": "Type 2"},
      {"attestationType": "Type 3"}
    ]
  },
  "speed": 100.0,
  "remark": "measured at plant"
}`
