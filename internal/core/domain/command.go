package domain

// CommandKind identifies the graph operation a command invokes.
type CommandKind int

const (
	// CommandDeclare declares that Target depends on Dependency.
	CommandDeclare CommandKind = iota
	// CommandTouch touches the leaf Target.
	CommandTouch
	// CommandRebuild rebuilds Target.
	CommandRebuild
)

// String returns the script keyword of the kind.
func (k CommandKind) String() string {
	switch k {
	case CommandDeclare:
		return "declare"
	case CommandTouch:
		return "touch"
	case CommandRebuild:
		return "build"
	default:
		return "unknown"
	}
}

// Command is one parsed instruction for a graph.
type Command struct {
	Kind       CommandKind
	Target     string
	Dependency string
	// Line is the 1-based source line, zero when the command did not come from a script.
	Line int
}

// Config is the loaded project configuration.
type Config struct {
	Limits Limits
	Rules  []Rule
}

// Rule declares the dependencies of one target, in order.
type Rule struct {
	Target    string
	DependsOn []string
}

// Commands expands the rules into declare commands in file order.
func (c *Config) Commands() []Command {
	var cmds []Command
	for _, r := range c.Rules {
		for _, dep := range r.DependsOn {
			cmds = append(cmds, Command{Kind: CommandDeclare, Target: r.Target, Dependency: dep})
		}
	}
	return cmds
}
