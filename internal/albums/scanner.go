package albums

import "albumvault/pkg/repository"

func scanAlbum(s repository.Scanner) (Album, error) {
	var a Album
	err := s.Scan(
		&a.ID,
		&a.Title,
		&a.Artist,
		&a.Genre,
		&a.ReleaseDate,
		&a.Duration,
		&a.Producer,
		&a.ImageFilename,
		&a.PDFFilename,
	)
	return a, err
}
