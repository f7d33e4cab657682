package secrandom

func init() {
	err := prep()
	if err != nil {
		panic(err)
	}

	err = start()
	if err != nil {
		panic(err)
	}
}
