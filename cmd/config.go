package cmd

type Config struct {
	HTTPPort                  string
	GridWidth                 int
	GridHeight                int
	DefaultK                  int
	DispatchStrategy          string
	MovementSimulationEnabled bool
}
