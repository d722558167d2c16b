package motion

import (
	"errors"
	"log/slog"
)

// Evaluate runs one resolution pass: it picks the active target, then for
// every key of that target works out where the key animates from and to.
// Every animation started by an earlier pass is cancelled first, including
// keys this pass no longer names. Equal scalar endpoints are then written
// straight into the style state; every other key starts a new animation on
// the driver. Keys are independent: a key that fails is reported and the rest
// of the pass still runs. The returned error joins every per-key failure.
func (e *Element) Evaluate() error {
	if e.disposed {
		return errDisposed
	}
	res, err := Resolve(e.props, &e.gesture, e.style)
	if err != nil {
		return err
	}
	log := e.logger()
	if res.Skip {
		log.Debug("pass skipped: no target")
		return nil
	}

	cfg, err := e.props.Transition.DriverConfig()
	if err != nil {
		return err
	}

	e.cancelAll()
	var errs []error
	e.style.Batch(func() {
		for _, key := range res.Keys {
			if err := e.evaluateKey(log, key, res, cfg); err != nil {
				log.Warn("key evaluation failed", "key", key, "err", err)
				errs = append(errs, &KeyError{Key: key, Err: err})
			}
		}
	})
	return errors.Join(errs...)
}

func (e *Element) evaluateKey(log *slog.Logger, key string, res Resolution, cfg DriverConfig) error {
	from, err := e.from(key)
	if err != nil {
		return err
	}
	to, err := e.to(key, res)
	if err != nil {
		return err
	}

	if !to.IsSequence() && to.IsDefined() && from == to.First() {
		e.style.Set(key, to.First())
		return nil
	}

	log.Debug("drive", "key", key, "from", from.String(), "to", to.Last().String(), "config", describeConfig(cfg))
	e.tasks[key] = e.driver.Drive(from, to, cfg, func(v Value) {
		e.style.Set(key, v)
	})
	return nil
}

// cancelAll stops every running animation.
func (e *Element) cancelAll() {
	for key, stop := range e.tasks {
		delete(e.tasks, key)
		stop()
	}
}

// from resolves the start value of key. An explicit initial, when set, is
// the source on every pass: its value for key, else the defaults, else the
// host origin. Without one the current style comes before the defaults.
func (e *Element) from(key string) (Value, error) {
	if !e.props.Initial.IsZero() {
		end, ok, err := e.props.Initial.endpoint(e.props.Variants, "initial", key)
		if err != nil {
			return Undefined, err
		}
		if ok && end.First().IsDefined() {
			return end.First(), nil
		}
	} else if v, ok := e.style.Get(key); ok && v.IsDefined() {
		return v, nil
	}
	if v, ok := defaults.Get(key); ok {
		return v, nil
	}
	return e.origin.get(key)
}

// to resolves the end value of key: the target, then the defaults, then the
// host origin.
func (e *Element) to(key string, res Resolution) (Endpoint, error) {
	end, ok, err := res.Target.endpoint(e.props.Variants, res.Field, key)
	if err != nil {
		return Endpoint{}, err
	}
	if ok && end.IsDefined() {
		return end, nil
	}
	if v, ok := defaults.Get(key); ok {
		return Scalar(v), nil
	}
	v, err := e.origin.get(key)
	if err != nil {
		return Endpoint{}, err
	}
	return Scalar(v), nil
}
