package faculty

// FrequentCoauthors exposes frequentCoauthors to the external test package.
var FrequentCoauthors = frequentCoauthors
