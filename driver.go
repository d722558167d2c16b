package motion

// CancelFunc stops an animation and releases its scheduling slot. Calling
// it more than once is safe.
type CancelFunc func()

// Driver runs one interpolation from from to to. It reports every computed
// frame through onUpdate and returns a handle that stops the animation.
// Drive must not block: frames are produced later by whatever clock the
// driver is attached to.
type Driver interface {
	Drive(from Value, to Endpoint, cfg DriverConfig, onUpdate func(Value)) CancelFunc
}

// DriverFunc adapts a plain function to the Driver interface.
type DriverFunc func(from Value, to Endpoint, cfg DriverConfig, onUpdate func(Value)) CancelFunc

// Drive calls f.
func (f DriverFunc) Drive(from Value, to Endpoint, cfg DriverConfig, onUpdate func(Value)) CancelFunc {
	return f(from, to, cfg, onUpdate)
}
