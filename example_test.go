package dibs_test

import (
	"fmt"
	"log"

	"github.com/mkfsn/dibs"
)

type Logger struct {
	Prefix string
}

type Mailer struct {
	Logger *Logger
}

type Report struct {
	Name string
}

var (
	loggerType = &dibs.Type{
		Name: "Logger",
		New: func(args ...any) any {
			return &Logger{Prefix: "app"}
		},
	}

	mailerType = &dibs.Type{
		Name:   "Mailer",
		Params: []string{"logger"},
		New: func(args ...any) any {
			return &Mailer{Logger: args[0].(*Logger)}
		},
	}
)

func reportType(name string) *dibs.Type {
	return &dibs.Type{
		Name: "Report" + name,
		New: func(args ...any) any {
			return &Report{Name: name}
		},
	}
}

// Example demonstrates basic binding registration and resolution.
func Example() {
	c := dibs.New()

	c.BindSingleton("logger", loggerType).
		BindType("mailer", mailerType)

	mailer, err := dibs.As[*Mailer](c, "mailer")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(mailer.Logger.Prefix)
	// Output: app
}

// ExampleContainer_Resolve_group shows ordered group aggregation.
func ExampleContainer_Resolve_group() {
	c := dibs.New()

	c.BindType("cpuReport", reportType("cpu")).GroupOnID("reports")
	c.BindType("memReport", reportType("mem")).GroupOnID("reports")

	resolved, err := c.Resolve("reports")
	if err != nil {
		log.Fatal(err)
	}

	for _, member := range resolved.([]any) {
		fmt.Println(member.(*Report).Name)
	}
	// Output:
	// cpu
	// mem
}

// ExampleFactory shows factory synthesis with caller-supplied arguments.
func ExampleFactory() {
	widgetType := &dibs.Type{
		Name:   "Widget",
		Params: []string{"width", "height"},
		New: func(args ...any) any {
			return fmt.Sprintf("%vx%v", args[0], args[1])
		},
	}

	c := dibs.New()
	c.BindType("widget", widgetType)

	factory, err := dibs.As[dibs.Factory](c, "widgetFactory")
	if err != nil {
		log.Fatal(err)
	}

	widget, err := factory(2, 3)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(widget)
	// Output: 2x3
}
