package secrandom

func fullFeeder() {
	for {
		select {
		case data := <-rngFeeder:
			reseedRng(data)
		case <-shutdownSignal:
			return
		}
	}
}
