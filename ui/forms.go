package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/fleetra/site/content"
)

// ---- Form Components ----

// relayForm posts its fields to the relay as the given form type.
func relayForm(formID, formType, redirect string, content ...g.Node) g.Node {
	return Form(
		ID(formID),
		Class("space-y-6"),
		Method("post"),
		Action(SubmitPath),
		g.Attr("data-relay", formType),
		g.If(redirect != "", g.Attr("data-redirect", redirect)),
		g.Group(content),
		styledButton("Submit", buttonPrimary, Type("submit")),
		resultContainer(),
	)
}

func FormGroup(labelText string, fieldID string, input g.Node) g.Node {
	return Div(
		Class("space-y-2"),
		Label(For(fieldID), Class("block"), g.Text(labelText)),
		input,
	)
}

func inputAttrs(inputType, id string, required bool, extra ...g.Node) []g.Node {
	attrs := []g.Node{
		Type(inputType),
		ID(id),
		Name(id),
		Class("w-full p-2 border rounded"),
	}
	if required {
		attrs = append(attrs, Required())
	}
	return append(attrs, extra...)
}

func TextInput(id string, required bool, extra ...g.Node) g.Node {
	return Input(inputAttrs("text", id, required, extra...)...)
}

func EmailInput(id string, required bool) g.Node {
	return Input(inputAttrs("email", id, required, g.Attr("autocomplete", "email"))...)
}

func TextArea(id string, rows string, required bool) g.Node {
	attrs := []g.Node{
		ID(id),
		Name(id),
		Rows(rows),
		Class("w-full p-2 border rounded"),
	}
	if required {
		attrs = append(attrs, Required())
	}
	return Textarea(attrs...)
}

func SelectInput(id, prompt string, options []string, required bool) g.Node {
	nodes := []g.Node{
		ID(id),
		Name(id),
		Class("w-full p-2 border rounded"),
		g.If(required, Required()),
		Option(Value(""), g.Text(prompt)),
	}
	for _, o := range options {
		nodes = append(nodes, Option(Value(o), g.Text(o)))
	}
	return Select(nodes...)
}

// CheckboxGroup renders options that the form script collects as an array.
func CheckboxGroup(name string, options []string) g.Node {
	boxes := make([]g.Node, 0, len(options))
	for _, o := range options {
		id := name + "-" + o
		boxes = append(boxes, Div(
			Class("flex items-center space-x-2"),
			Input(Type("checkbox"), Name(name), Value(o), ID(id), g.Attr("data-multi", "")),
			Label(For(id), g.Text(o)),
		))
	}
	return Div(Class("grid grid-cols-2 gap-2"), g.Group(boxes))
}

// ---- Forms ----

func BetaForm(s *content.Site) g.Node {
	return relayForm("beta-form", "beta", "",
		FormGroup("Name", "name", TextInput("name", true, g.Attr("autocomplete", "name"))),
		FormGroup("Work email", "email", EmailInput("email", true)),
		FormGroup("Company", "company", TextInput("company", true, g.Attr("autocomplete", "organization"))),
		FormGroup("Fleet size", "fleetSize", SelectInput("fleetSize", "How many vehicles?", s.Survey.FleetSizes, true)),
		FormGroup("Phone (optional)", "phone", Input(inputAttrs("tel", "phone", false, g.Attr("autocomplete", "tel"))...)),
		FormGroup("Role", "role", SelectInput("role", "Your role", s.Survey.Roles, false)),
		FormGroup("Anything we should know?", "message", TextArea("message", "4", false)),
	)
}

func SurveyForm(s *content.Site) g.Node {
	return relayForm("survey-form", "beta", "/",
		FormGroup("Name", "name", TextInput("name", true)),
		FormGroup("Work email", "email", EmailInput("email", true)),
		FormGroup("Company", "company", TextInput("company", true)),
		FormGroup("Fleet size", "fleetSize", SelectInput("fleetSize", "How many vehicles?", s.Survey.FleetSizes, true)),
		FormGroup("Role", "role", SelectInput("role", "Your role", s.Survey.Roles, false)),
		FormGroup("Which vehicles do you run?", "vehicles", CheckboxGroup("vehicles", s.Survey.Vehicles)),
		FormGroup("What are your biggest challenges?", "challenges", CheckboxGroup("challenges", s.Survey.Challenges)),
		FormGroup("What would make Fleetra a must-have?", "message", TextArea("message", "4", false)),
	)
}

// ContactForm fixes the inquiry kind with a hidden field so the relay can
// route investor questions separately.
func ContactForm(inquiry string) g.Node {
	return relayForm("contact-form", "contact", "",
		Input(Type("hidden"), Name("inquiry"), Value(inquiry)),
		FormGroup("Name", "name", TextInput("name", true, g.Attr("autocomplete", "name"))),
		FormGroup("Email", "email", EmailInput("email", true)),
		FormGroup("Company (optional)", "company", TextInput("company", false)),
		FormGroup("Subject", "subject", TextInput("subject", false)),
		FormGroup("Message", "message", TextArea("message", "6", true)),
	)
}
