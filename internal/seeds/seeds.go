package seeds

func SeedAll() error {
	if err := SeedFences(); err != nil {
		return err
	}
	if err := SeedStaff(); err != nil {
		return err
	}
	if err := SeedResidents(); err != nil {
		return err
	}
	if err := SeedAdminUser(); err != nil {
		return err
	}
	return nil
}
