package adoptions

import "time"

// SetNow fija el reloj del servicio en tests externos.
func (s *Service) SetNow(now func() time.Time) { s.now = now }
