package options

import "github.com/pkg/errors"

func Validate(o *Options) []error {
	var errs []error
	if len(o.Host) == 0 {
		errs = append(errs, errors.New("host is required"))
	}
	if o.Port < 1 || o.Port > 65535 {
		errs = append(errs, errors.Errorf("port %d out of range", o.Port))
	}
	if o.Interval < 0 {
		errs = append(errs, errors.Errorf("interval %s must not be negative", o.Interval))
	}
	if len(o.Broker) != 0 && len(o.Topic) == 0 {
		errs = append(errs, errors.New("topic is required when a broker is configured"))
	}
	if err := o.BaseOptions.ValidateAndApply(); err != nil {
		errs = append(errs, err)
	}

	return errs
}
