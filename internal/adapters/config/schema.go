package config

// Remakefile is the on-disk shape of remake.yaml.
type Remakefile struct {
	Version string    `yaml:"version" validate:"omitempty,oneof=1"`
	Limits  *LimitDTO `yaml:"limits"`
	Rules   []RuleDTO `yaml:"rules" validate:"dive"`
}

// LimitDTO holds the optional capacity limits. A zero limit means unbounded.
type LimitDTO struct {
	MaxTargets      *int `yaml:"maxTargets" validate:"omitempty,gte=0"`
	MaxDependencies *int `yaml:"maxDependencies" validate:"omitempty,gte=0"`
}

// RuleDTO declares the dependencies of one target.
type RuleDTO struct {
	Target    string   `yaml:"target" validate:"required"`
	DependsOn []string `yaml:"dependsOn" validate:"dive,required"`
}
