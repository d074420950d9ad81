package declare

import (
	"fmt"

	"github.com/argos-cli/argos"
)

// Apply declares every option in doc against a, in the same bind-time
// semantics [argos.Args.String]/[argos.Args.Int]/... use — a [Document]
// is sugar over a fixed sequence of those calls, never a separate runtime
// binding path.
func Apply(doc *Document, a *argos.Args) error {
	if doc.AppName != "" {
		a.SetAppName(doc.AppName)
	}

	for _, opt := range doc.Options {
		if err := applyOne(opt, a); err != nil {
			return err
		}
	}

	return nil
}

func applyOne(opt DocumentOption, a *argos.Args) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("declare: option %q: %v", opt.Owner, r)
		}
	}()

	switch opt.Kind {
	case "string":
		a.String(opt.Owner, commonOptions(opt, stringDefault(opt.Default))...)
	case "int":
		a.Int(opt.Owner, commonOptions(opt, intDefault(opt.Default))...)
	case "float":
		a.Float(opt.Owner, commonOptions(opt, floatDefault(opt.Default))...)
	case "bool":
		a.Bool(opt.Owner, commonOptions(opt, boolDefault(opt.Default))...)
	case "enum":
		if len(opt.Candidates) == 0 {
			return fmt.Errorf("declare: option %q: enum kind requires candidates", opt.Owner)
		}

		a.Enum(opt.Owner, opt.Candidates, commonOptions(opt, stringDefault(opt.Default))...)
	case "stringList":
		a.StringList(opt.Owner, commonOptions(opt, nil)...)
	case "stringSet":
		a.StringSet(opt.Owner, commonOptions(opt, nil)...)
	case "intList":
		a.IntList(opt.Owner, commonOptions(opt, nil)...)
	case "intGroup":
		if opt.Arity < 2 {
			return fmt.Errorf("declare: option %q: intGroup kind requires arity >= 2", opt.Owner)
		}

		a.IntGroup(opt.Owner, opt.Arity, commonOptions(opt, nil)...)
	default:
		return fmt.Errorf("declare: option %q: unknown kind %q", opt.Owner, opt.Kind)
	}

	return nil
}

func stringDefault(v any) argos.SpecOption {
	if v == nil {
		return nil
	}

	s, _ := v.(string)

	return argos.Default(s)
}

func intDefault(v any) argos.SpecOption {
	if v == nil {
		return nil
	}

	f, _ := v.(float64) // json.Unmarshal decodes numbers as float64

	return argos.Default(int(f))
}

func floatDefault(v any) argos.SpecOption {
	if v == nil {
		return nil
	}

	f, _ := v.(float64)

	return argos.Default(f)
}

func boolDefault(v any) argos.SpecOption {
	if v == nil {
		return nil
	}

	b, _ := v.(bool)

	return argos.Default(b)
}

func commonOptions(opt DocumentOption, def argos.SpecOption) []argos.SpecOption {
	var opts []argos.SpecOption

	if def != nil {
		opts = append(opts, def)
	}

	if len(opt.Switches) > 0 {
		opts = append(opts, argos.WithSwitches(opt.Switches...))
	}

	if opt.Env != "" {
		opts = append(opts, argos.WithEnv(opt.Env))
	}

	if opt.Help != "" {
		opts = append(opts, argos.WithHelp(opt.Help))
	}

	if opt.Required {
		opts = append(opts, argos.Required())
	}

	if opt.Negatable {
		opts = append(opts, argos.Negatable())
	}

	if opt.Hidden {
		opts = append(opts, argos.Hidden())
	}

	if opt.Repeatable {
		opts = append(opts, argos.Repeatable())
	}

	if len(opt.Domains) > 0 {
		opts = append(opts, argos.Domains(opt.Domains...))
	}

	return opts
}
