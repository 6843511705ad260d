package sbml

import (
	"strings"
	"testing"
)

func rules(issues []Issue) []string {
	res := make([]string, len(issues))
	for i, is := range issues {
		res[i] = is.Rule
	}
	return res
}

func TestValidate(t *testing.T) {
	const pre = `<sbml xmlns="http://www.sbml.org/sbml/level3/version2/core" level="3" version="2">`
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{
			"valid model",
			pre + `<model id="m"><listOfParameters>
				<parameter id="k1" value="1" constant="true"/>
				<parameter id="k2" constant="false"/>
			</listOfParameters></model></sbml>`,
			nil,
		},
		{
			"duplicate id",
			pre + `<model id="m"><listOfParameters>
				<parameter id="k1" constant="true"/>
				<parameter id="k1" constant="true"/>
			</listOfParameters></model></sbml>`,
			[]string{"10301"},
		},
		{
			"bad sid syntax",
			pre + `<model id="1model"/></sbml>`,
			[]string{"10310"},
		},
		{
			"duplicate local parameter id",
			pre + `<model id="m"><listOfReactions>
				<reaction id="r" reversible="false"><kineticLaw><listOfLocalParameters>
					<localParameter id="k"/>
					<localParameter id="k"/>
				</listOfLocalParameters></kineticLaw></reaction>
			</listOfReactions></model></sbml>`,
			[]string{"10303"},
		},
		{
			"local ids scoped per kinetic law",
			pre + `<model id="m"><listOfReactions>
				<reaction id="r1" reversible="false"><kineticLaw><listOfLocalParameters>
					<localParameter id="k"/>
				</listOfLocalParameters></kineticLaw></reaction>
				<reaction id="r2" reversible="false"><kineticLaw><listOfLocalParameters>
					<localParameter id="k"/>
				</listOfLocalParameters></kineticLaw></reaction>
			</listOfReactions></model></sbml>`,
			nil,
		},
		{
			"local id may shadow a model id",
			pre + `<model id="m"><listOfParameters>
				<parameter id="k" constant="true"/>
			</listOfParameters><listOfReactions>
				<reaction id="r" reversible="false"><kineticLaw><listOfLocalParameters>
					<localParameter id="k"/>
				</listOfLocalParameters></kineticLaw></reaction>
			</listOfReactions></model></sbml>`,
			nil,
		},
		{
			"duplicate metaid",
			pre + `<model metaid="x"><listOfParameters metaid="x"/></model></sbml>`,
			[]string{"10307"},
		},
		{
			"bad metaid syntax",
			pre + `<model metaid="1 bad"/></sbml>`,
			[]string{"10309"},
		},
		{
			"bad sboTerm",
			pre + `<model sboTerm="SBO:12"/></sbml>`,
			[]string{"10308"},
		},
		{
			"disallowed child",
			pre + `<model><listOfThings/></model></sbml>`,
			[]string{"10102"},
		},
		{
			"disallowed subtree is not entered",
			pre + `<model><listOfThings><parameter id="1bad"/></listOfThings></model></sbml>`,
			[]string{"10102"},
		},
		{
			"missing required attribute",
			pre + `<model><listOfParameters><parameter id="k"/></listOfParameters></model></sbml>`,
			[]string{"10102"},
		},
		{
			"wrong attribute type",
			pre + `<model><listOfParameters><parameter id="k" constant="yes"/></listOfParameters></model></sbml>`,
			[]string{"10102"},
		},
		{
			"foreign namespace content ignored",
			pre + `<model><x xmlns="http://example.com/pkg"><parameter id="1bad"/></x></model></sbml>`,
			nil,
		},
		{
			"invalid root",
			`<notSbml/>`,
			[]string{"10102"},
		},
		{
			"several findings in document order",
			pre + `<model id="1bad" sboTerm="SBO:1"/></sbml>`,
			[]string{"10310", "10308"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ReadString(tt.doc)
			if err != nil {
				t.Fatal(err)
			}
			got := rules(doc.Validate())
			if len(got) != len(tt.want) {
				t.Fatalf("issues %v, want rules %v", doc.Validate(), tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("rules %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestValidateIssueDetails(t *testing.T) {
	doc, err := ReadString(`<sbml xmlns="http://www.sbml.org/sbml/level3/version2/core" level="3" version="2">` +
		`<model><listOfParameters><parameter id="a" constant="true"/><parameter id="a" constant="true"/></listOfParameters></model></sbml>`)
	if err != nil {
		t.Fatal(err)
	}
	issues := doc.Validate()
	if len(issues) != 1 {
		t.Fatalf("issues %v", issues)
	}
	is := issues[0]
	if is.Severity != SeverityError {
		t.Errorf("severity %v", is.Severity)
	}
	if is.Element.Path() != "/sbml/model/listOfParameters/parameter[1]" {
		t.Errorf("element path %q", is.Element.Path())
	}
	s := is.String()
	if !strings.Contains(s, "Error [10301]") || !strings.Contains(s, "'a'") {
		t.Errorf("rendered issue %q", s)
	}
}

func TestValidateModelFile(t *testing.T) {
	doc, err := ReadPath("testdata/model.sbml")
	if err != nil {
		t.Fatal(err)
	}
	if issues := doc.Validate(); len(issues) != 0 {
		t.Errorf("unexpected issues: %v", issues)
	}
}
