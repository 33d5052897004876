package environment

// Config is the layered environment configuration. It holds no lock: hosts
// that share a Config across goroutines hand each render pass a Snapshot.
type Config struct {
	Environments      []Environment     `yaml:"environments" json:"environments"`
	ActiveID          string            `yaml:"activeEnvironmentId" json:"activeEnvironmentId"`
	Headers           map[string]string `yaml:"headers,omitempty" json:"headers,omitempty"`
	DefaultParameters map[string]string `yaml:"defaultParameters,omitempty" json:"defaultParameters,omitempty"`
}

// NewConfig returns a configuration holding one default environment, which is active.
func NewConfig() *Config {
	c := &Config{
		Headers:           make(map[string]string),
		DefaultParameters: make(map[string]string),
	}
	c.Add(Default())
	return c
}

// Repair restores the invariants after loading: at least one environment,
// normalized fields, non-nil maps and an active id that resolves.
func (c *Config) Repair() {
	if c.Headers == nil {
		c.Headers = make(map[string]string)
	}
	if c.DefaultParameters == nil {
		c.DefaultParameters = make(map[string]string)
	}
	if len(c.Environments) == 0 {
		d := Default()
		c.Environments = []Environment{d}
		c.ActiveID = d.ID
	}
	for i := range c.Environments {
		c.Environments[i].Normalize()
	}
	if c.indexOf(c.ActiveID) < 0 {
		c.ActiveID = c.Environments[0].ID
	}
}

// Active returns the active environment, repairing a dangling active id or
// an empty environment list first.
func (c *Config) Active() Environment {
	if len(c.Environments) == 0 || c.indexOf(c.ActiveID) < 0 {
		c.Repair()
	}
	return c.Environments[c.indexOf(c.ActiveID)]
}

// Environment looks an environment up by id.
func (c *Config) Environment(id string) (Environment, bool) {
	i := c.indexOf(id)
	if i < 0 {
		return Environment{}, false
	}
	return c.Environments[i], true
}

// Find looks an environment up by id, then by name.
func (c *Config) Find(idOrName string) (Environment, bool) {
	if e, ok := c.Environment(idOrName); ok {
		return e, true
	}
	for _, e := range c.Environments {
		if e.Name == idOrName {
			return e, true
		}
	}
	return Environment{}, false
}

// Add appends an environment. The first environment becomes active.
func (c *Config) Add(e Environment) {
	c.Environments = append(c.Environments, e)
	if len(c.Environments) == 1 {
		c.ActiveID = e.ID
	}
}

// Remove deletes the environment with the given id. It refuses, returning
// false, when that would leave no environments or the id is unknown.
// Removing the active environment activates the first remaining one.
func (c *Config) Remove(id string) bool {
	if len(c.Environments) <= 1 {
		return false
	}
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.Environments = append(c.Environments[:i:i], c.Environments[i+1:]...)
	if id == c.ActiveID {
		c.ActiveID = c.Environments[0].ID
	}
	return true
}

// Update replaces the environment with the same id. Unknown ids are a no-op
// and return false.
func (c *Config) Update(e Environment) bool {
	i := c.indexOf(e.ID)
	if i < 0 {
		return false
	}
	c.Environments[i] = e
	return true
}

// SetActive makes the environment with the given id active.
func (c *Config) SetActive(id string) bool {
	if c.indexOf(id) < 0 {
		return false
	}
	c.ActiveID = id
	return true
}

// SetHeader adds or replaces a global header.
func (c *Config) SetHeader(key, value string) {
	if c.Headers == nil {
		c.Headers = make(map[string]string)
	}
	c.Headers[key] = value
}

// RemoveHeader deletes a global header.
func (c *Config) RemoveHeader(key string) {
	delete(c.Headers, key)
}

// SetDefaultParameter adds or replaces a default parameter override.
func (c *Config) SetDefaultParameter(key, value string) {
	if c.DefaultParameters == nil {
		c.DefaultParameters = make(map[string]string)
	}
	c.DefaultParameters[key] = value
}

// RemoveDefaultParameter deletes a default parameter override.
func (c *Config) RemoveDefaultParameter(key string) {
	delete(c.DefaultParameters, key)
}

// DefaultParameterValue returns the configured override for a parameter.
func (c *Config) DefaultParameterValue(name string) (string, bool) {
	v, ok := c.DefaultParameters[name]
	return v, ok
}

// Snapshot returns a deep copy that is safe to read while the original is
// mutated.
func (c *Config) Snapshot() *Config {
	out := &Config{
		Environments:      append([]Environment(nil), c.Environments...),
		ActiveID:          c.ActiveID,
		Headers:           make(map[string]string, len(c.Headers)),
		DefaultParameters: make(map[string]string, len(c.DefaultParameters)),
	}
	for k, v := range c.Headers {
		out.Headers[k] = v
	}
	for k, v := range c.DefaultParameters {
		out.DefaultParameters[k] = v
	}
	return out
}

func (c *Config) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, e := range c.Environments {
		if e.ID == id {
			return i
		}
	}
	return -1
}
