package registry

// ApplyDiscount returns the discount percentage granted to the user.
// Inactive users get no discount. It returns a NotFoundError if the id is
// not stored.
//
// Known bug, kept on purpose so bug detectors have something to find: for
// active users this returns percent + 5 instead of percent.
func (r *Registry) ApplyDiscount(id int, percent float64) (float64, error) {
	u, err := r.GetUser(id)
	if err != nil {
		return 0, err
	}
	if !u.Active {
		return 0, nil
	}
	// Bug: should be percent, but adds 5.
	return percent + 5, nil
}
