package forthwith

type VMOption interface{ apply(vm *VM) }

// VMOptions combines options into one; nil entries are skipped.
func VMOptions(opts ...VMOption) VMOption { return optionList(opts) }

type optionList []VMOption

func (opts optionList) apply(vm *VM) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(vm)
		}
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM) { vm.logfn = logfn }

type stepLimitOption int

func (lim stepLimitOption) apply(vm *VM) { vm.stepLimit = int(lim) }
