// Package partial assembles a configuration from ordered layers.
//
// A configuration type T is paired with a partial struct P whose exported
// fields mirror T's in name and order, each wrapped in [Optional]:
//
//	type Config struct {
//		Str1   string
//		Port   uint16
//		Height *uint64 // already optional
//	}
//
//	type PartialConfig struct {
//		Str1   partial.Optional[string] `env:"STR1" json:"str1"`
//		Port   partial.Optional[uint16] `env:"PORT,APP_PORT" json:"port"`
//		Height partial.Optional[uint64] `json:"height"`
//	}
//
//	func (p PartialConfig) OverrideWith(o PartialConfig) PartialConfig {
//		return partial.Override(p, o)
//	}
//
//	func (p PartialConfig) Build(log *zerolog.Logger) (Config, error) {
//		return partial.Assemble[Config](p, log)
//	}
//
// Layers are produced by a [Source] and folded in call order, later layers
// overriding earlier ones field by field:
//
//	cfg, err := partial.New[Config](PartialConfig{}).
//		Source(file.Path[PartialConfig]("config.toml")).
//		Source(env.New[PartialConfig]()).
//		Source(flags.New[PartialConfig](fs)).
//		Build()
//
// Build reports every required field that no layer set in a single
// [*MissingFieldsError] instead of failing on the first one.
package partial
