package models

// EntityID implementations let the collection controller address any
// marketplace entity uniformly.

func (u User) EntityID() string           { return u.ID }
func (w Workshop) EntityID() string       { return w.ID }
func (r ServiceRequest) EntityID() string { return r.ID }
func (w Wallet) EntityID() string         { return w.ID }
func (t Transaction) EntityID() string    { return t.ID }
func (s ServiceType) EntityID() string    { return s.ID }
